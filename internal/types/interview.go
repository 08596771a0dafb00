package types

// Speaker identifies who produced a transcript turn.
type Speaker string

// Transcript speakers.
const (
	SpeakerAI   Speaker = "AI"
	SpeakerUser Speaker = "User"
)

// Turn is one entry in an interview transcript. The transcript is append-only
// during a session and discarded on restart.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// InterviewFeedback is the coach's review of a completed session,
// produced once after the fourth user answer.
type InterviewFeedback struct {
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	CulturalNuance string   `json:"culturalNuance"`
}

// CountUserTurns returns the number of user turns in a transcript.
func CountUserTurns(history []Turn) int {
	n := 0
	for _, t := range history {
		if t.Speaker == SpeakerUser {
			n++
		}
	}
	return n
}
