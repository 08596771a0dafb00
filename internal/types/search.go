package types

import "net/url"

// GroundingSource is a citation attached to a web-grounded model response:
// where the provider claims a job posting or recruiter link was found.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Hostname derives the display hostname from the source URI.
// Returns an empty string when the URI does not parse as an absolute URL.
func (g GroundingSource) Hostname() string {
	u, err := url.Parse(g.URI)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// SearchResult is one job-search report: a free-form markdown body plus the
// grounding sources it was built from. Recomputed per query, never persisted.
type SearchResult struct {
	Text    string            `json:"text"`
	Sources []GroundingSource `json:"sources"`
}
