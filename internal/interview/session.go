// Package interview holds the mock-interview session state machine.
//
// A session walks Idle → InProgress → Complete. The coach asks questions one
// at a time; after the fourth user answer the session fetches feedback exactly
// once, appends a fixed closing message, and becomes terminal. Restarting
// discards the transcript and feedback.
package interview

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/careerbridge/internal/types"
)

// State is the observable session state.
type State string

// Session states.
const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// userTurnLimit is the number of answers collected before feedback.
const userTurnLimit = 4

// closingMessage is appended by the coach once feedback has been produced.
const closingMessage = "Thank you for these responses. I've prepared a feedback report for you above."

// QuestionSource produces interview questions and end-of-session feedback.
// Satisfied by *gateway.Gateway.
type QuestionSource interface {
	NextQuestion(ctx context.Context, profile types.UserProfile, history []types.Turn) (string, error)
	Feedback(ctx context.Context, history []types.Turn) (*types.InterviewFeedback, error)
}

// ErrSubmitRejected indicates a submission that the session refuses:
// empty input, a request already in flight, or a session not in progress.
type ErrSubmitRejected struct {
	Reason string
}

func (e *ErrSubmitRejected) Error() string {
	return fmt.Sprintf("submission rejected: %s", e.Reason)
}

// Session is one user's interview coach session. All methods are safe for
// concurrent use; the in-flight guard rejects overlapping submissions.
type Session struct {
	source  QuestionSource
	profile func() types.UserProfile

	mu         sync.Mutex
	id         uuid.UUID
	state      State
	transcript []types.Turn
	feedback   *types.InterviewFeedback
	inFlight   bool
}

// NewSession creates an idle session. profile is read at call time so the
// session always sees the latest saved profile.
func NewSession(source QuestionSource, profile func() types.UserProfile) *Session {
	return &Session{
		source:  source,
		profile: profile,
		state:   StateIdle,
	}
}

// Snapshot is a copy of the session's observable state.
type Snapshot struct {
	ID         string                   `json:"id,omitempty"`
	State      State                    `json:"state"`
	Transcript []types.Turn             `json:"transcript"`
	UserTurns  int                      `json:"userTurns"`
	Feedback   *types.InterviewFeedback `json:"feedback,omitempty"`
	InFlight   bool                     `json:"inFlight"`
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]types.Turn, len(s.transcript))
	copy(transcript, s.transcript)

	var id string
	if s.id != uuid.Nil {
		id = s.id.String()
	}
	return Snapshot{
		ID:         id,
		State:      s.state,
		Transcript: transcript,
		UserTurns:  types.CountUserTurns(transcript),
		Feedback:   s.feedback,
		InFlight:   s.inFlight,
	}
}

// Start begins a new session, discarding any prior transcript and feedback.
// Allowed from Idle or Complete; rejected while a session is in progress or a
// request is outstanding. On provider failure the session stays Idle.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return &ErrSubmitRejected{Reason: "a request is already in flight"}
	}
	if s.state == StateInProgress {
		s.mu.Unlock()
		return &ErrSubmitRejected{Reason: "session already in progress"}
	}
	s.inFlight = true
	s.state = StateIdle
	s.transcript = nil
	s.feedback = nil
	s.id = uuid.New()
	profile := s.profile()
	s.mu.Unlock()

	question, err := s.source.NextQuestion(ctx, profile, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		return err
	}
	s.transcript = append(s.transcript, types.Turn{Speaker: types.SpeakerAI, Text: question})
	s.state = StateInProgress
	return nil
}

// Submit records a user answer and advances the session: another question for
// answers one through three, feedback plus the closing message on the fourth.
func (s *Session) Submit(ctx context.Context, text string) error {
	s.mu.Lock()
	if strings.TrimSpace(text) == "" {
		s.mu.Unlock()
		return &ErrSubmitRejected{Reason: "answer is empty"}
	}
	if s.inFlight {
		s.mu.Unlock()
		return &ErrSubmitRejected{Reason: "a request is already in flight"}
	}
	if s.state != StateInProgress {
		s.mu.Unlock()
		return &ErrSubmitRejected{Reason: "no session in progress"}
	}

	s.inFlight = true
	s.transcript = append(s.transcript, types.Turn{Speaker: types.SpeakerUser, Text: text})
	history := make([]types.Turn, len(s.transcript))
	copy(history, s.transcript)
	final := types.CountUserTurns(history) >= userTurnLimit
	profile := s.profile()
	s.mu.Unlock()

	if final {
		feedback, err := s.source.Feedback(ctx, history)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.inFlight = false
		if err != nil {
			// The session still completes; feedback is simply unavailable.
			log.Printf("Interview feedback fetch failed: %v", err)
			feedback = nil
		}
		s.feedback = feedback
		s.transcript = append(s.transcript, types.Turn{Speaker: types.SpeakerAI, Text: closingMessage})
		s.state = StateComplete
		return nil
	}

	question, err := s.source.NextQuestion(ctx, profile, history)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		// Keep the user's answer; the session stays in progress so the
		// next submission can retry the question fetch.
		return err
	}
	s.transcript = append(s.transcript, types.Turn{Speaker: types.SpeakerAI, Text: question})
	return nil
}
