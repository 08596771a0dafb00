package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/careerbridge/internal/interview"
)

type answerRequest struct {
	Text string `json:"text"`
}

// handleInterviewStart begins a fresh coaching session.
func (s *Server) handleInterviewStart(w http.ResponseWriter, r *http.Request) {
	if err := s.interview.Start(r.Context()); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.interview.Snapshot())
}

// handleInterviewAnswer submits one answer and returns the advanced session.
func (s *Server) handleInterviewAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := s.interview.Submit(r.Context(), req.Text); err != nil {
		s.handleError(w, err)
		return
	}

	snap := s.interview.Snapshot()
	if snap.State == interview.StateComplete {
		// Sticky: the dashboard checklist remembers the first completion
		// across restarts of the session.
		s.mu.Lock()
		s.interviewDone = true
		s.mu.Unlock()
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleGetInterview returns the current session state.
func (s *Server) handleGetInterview(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.interview.Snapshot())
}
