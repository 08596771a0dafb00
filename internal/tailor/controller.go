// Package tailor holds the CV tailoring flow: analyze a CV, optionally save
// the analysis snapshot, and generate a tailored cover letter.
//
// The flow is linear rather than a state machine: analyze unlocks save and
// cover-letter generation, and each action is independently re-triggerable.
package tailor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/careerbridge/internal/types"
)

// savedIndicatorDelay is how long the "saved" indicator shows before
// reverting to idle.
const savedIndicatorDelay = 3 * time.Second

// SaveStatus is the transient state of the save indicator.
type SaveStatus string

// Save indicator states.
const (
	SaveIdle  SaveStatus = "idle"
	SaveSaved SaveStatus = "saved"
)

// Analyzer is the slice of the model gateway the tailor flow needs.
type Analyzer interface {
	AnalyzeCV(ctx context.Context, cvText, jobDescription string) (types.CVAnalysis, error)
	GenerateCoverLetter(ctx context.Context, cvText string, analysis types.CVAnalysis, jobDescription string) (string, error)
}

// Saver persists analysis snapshots. Satisfied by *store.Store.
type Saver interface {
	SaveAnalysis(ctx context.Context, snapshot types.SavedAnalysis) error
}

// ErrInvalidInput indicates an action attempted with missing required input.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ErrSuperseded indicates an analysis completed after a newer analysis had
// already been started; its result was discarded.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

// Controller owns the CV tailoring state. Safe for concurrent use; a stale
// analysis completion never overwrites a newer one.
type Controller struct {
	analyzer Analyzer
	saver    Saver
	now      func() time.Time

	mu          sync.Mutex
	analysis    *types.CVAnalysis
	coverLetter string
	analyzeSeq  uint64
	savedUntil  time.Time
}

// New creates a tailor controller. now is injectable for clock-driven tests;
// pass time.Now in production.
func New(analyzer Analyzer, saver Saver, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{analyzer: analyzer, saver: saver, now: now}
}

// Snapshot is the observable tailor state.
type Snapshot struct {
	Analysis    *types.CVAnalysis `json:"analysis"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	SaveStatus  SaveStatus        `json:"saveStatus"`
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Analysis:    c.analysis,
		CoverLetter: c.coverLetter,
		SaveStatus:  c.saveStatus(),
	}
}

// saveStatus must be called with the lock held.
func (c *Controller) saveStatus() SaveStatus {
	if c.now().Before(c.savedUntil) {
		return SaveSaved
	}
	return SaveIdle
}

// Analyze reviews the CV text. Empty text is rejected before any gateway
// call. On success the analysis replaces the prior one atomically and any
// generated cover letter is cleared; on failure prior state is untouched.
// A completion that arrives after a newer Analyze started is discarded.
func (c *Controller) Analyze(ctx context.Context, cvText, jobDescription string) (types.CVAnalysis, error) {
	if strings.TrimSpace(cvText) == "" {
		return types.CVAnalysis{}, &ErrInvalidInput{Reason: "CV text is required"}
	}

	c.mu.Lock()
	c.analyzeSeq++
	seq := c.analyzeSeq
	c.mu.Unlock()

	analysis, err := c.analyzer.AnalyzeCV(ctx, cvText, jobDescription)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		return types.CVAnalysis{}, err
	}
	if seq != c.analyzeSeq {
		return types.CVAnalysis{}, ErrSuperseded
	}
	c.analysis = &analysis
	c.coverLetter = ""
	return analysis, nil
}

// Save persists the current analysis as a timestamped snapshot and flips the
// saved indicator, which reverts to idle after a fixed delay.
func (c *Controller) Save(ctx context.Context) (types.SavedAnalysis, error) {
	c.mu.Lock()
	if c.analysis == nil {
		c.mu.Unlock()
		return types.SavedAnalysis{}, &ErrInvalidInput{Reason: "no analysis to save"}
	}
	snapshot := types.SavedAnalysis{
		CVAnalysis: *c.analysis,
		ID:         uuid.New().String(),
		SavedAt:    c.now(),
	}
	c.mu.Unlock()

	if err := c.saver.SaveAnalysis(ctx, snapshot); err != nil {
		return types.SavedAnalysis{}, err
	}

	c.mu.Lock()
	c.savedUntil = c.now().Add(savedIndicatorDelay)
	c.mu.Unlock()
	return snapshot, nil
}

// GenerateCoverLetter produces a cover letter for the job description.
// Requires a prior successful analysis and non-empty job description; on
// failure the prior letter is untouched.
func (c *Controller) GenerateCoverLetter(ctx context.Context, cvText, jobDescription string) (string, error) {
	c.mu.Lock()
	if c.analysis == nil {
		c.mu.Unlock()
		return "", &ErrInvalidInput{Reason: "analyze a CV before generating a cover letter"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		c.mu.Unlock()
		return "", &ErrInvalidInput{Reason: "job description is required"}
	}
	analysis := *c.analysis
	c.mu.Unlock()

	letter, err := c.analyzer.GenerateCoverLetter(ctx, cvText, analysis, jobDescription)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.coverLetter = letter
	c.mu.Unlock()
	return letter, nil
}
