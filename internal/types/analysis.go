package types

import "time"

// CVAnalysis is the structured result of a CV review against French
// "CV professionnel" standards. Field names match the provider's response
// schema and the durable-storage format.
type CVAnalysis struct {
	FormattingScore    int      `json:"formattingScore"`
	ContentSuggestions []string `json:"contentSuggestions"`
	CulturalTips       []string `json:"culturalTips"`
	ReformattedCV      string   `json:"reformattedCV"`
}

// SavedAnalysis is a CVAnalysis snapshot persisted from the CV Tailor page,
// independent of the user profile.
type SavedAnalysis struct {
	CVAnalysis
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
}
