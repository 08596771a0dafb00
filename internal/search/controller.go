// Package search holds the job-search page state: the latest grounded search
// result and the query overrides the user typed on top of their profile.
package search

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/careerbridge/internal/types"
)

// Matcher is the slice of the model gateway the search page needs.
type Matcher interface {
	MatchJobs(ctx context.Context, profile types.UserProfile) (types.SearchResult, error)
}

// Controller owns the job-search state. Identical queries issued concurrently
// share one provider call, and a completion from a superseded query never
// overwrites a newer result.
type Controller struct {
	matcher Matcher
	profile func() types.UserProfile
	group   singleflight.Group

	mu        sync.Mutex
	seq       uint64
	pending   int
	result    *types.SearchResult
	lastTerm  string
	lastField string
}

// New creates a search controller. profile is read at call time so searches
// always see the latest saved profile.
func New(matcher Matcher, profile func() types.UserProfile) *Controller {
	return &Controller{matcher: matcher, profile: profile}
}

// Snapshot is the observable search state.
type Snapshot struct {
	Result   *types.SearchResult `json:"result"`
	InFlight bool                `json:"inFlight"`
	Field    string              `json:"field,omitempty"`
	Term     string              `json:"searchTerm,omitempty"`
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Result:   c.result,
		InFlight: c.pending > 0,
		Field:    c.lastField,
		Term:     c.lastTerm,
	}
}

// Search runs a grounded job search. field and searchTerm override the
// profile's field and preferences for this query; an empty field falls back
// to the profile's field. On success the stored result is replaced; a stale
// completion (one superseded by a newer Search) is discarded and the newer
// result returned instead.
func (c *Controller) Search(ctx context.Context, field, searchTerm string) (types.SearchResult, error) {
	query := c.profile()
	if field != "" {
		query.Field = field
	}
	query.Preferences = searchTerm

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.pending++
	c.lastField = query.Field
	c.lastTerm = searchTerm
	c.mu.Unlock()

	key := query.Field + "\x00" + searchTerm
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.matcher.MatchJobs(ctx, query)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending--
	if err != nil {
		return types.SearchResult{}, err
	}
	result := v.(types.SearchResult)
	if seq == c.seq {
		c.result = &result
	} else if c.result != nil {
		// Superseded: keep and report the newer stored result.
		result = *c.result
	}
	return result, nil
}
