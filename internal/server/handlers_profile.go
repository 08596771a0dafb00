package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/careerbridge/internal/report"
	"github.com/jonathan/careerbridge/internal/types"
)

// handleGetProfile returns the current profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.currentProfile())
}

// handleUpdateProfile replaces the profile wholesale. Partial profiles are
// accepted; only field-level constraints are validated. The store is written
// before the in-memory profile so a failed write never desyncs the two.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	if err := profile.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			s.handleError(w, &ErrValidation{Field: fieldErrs[0].Field(), Message: "invalid value"})
			return
		}
		s.handleError(w, &ErrValidation{Field: "profile", Message: err.Error()})
		return
	}

	if err := s.store.SaveProfile(r.Context(), profile); err != nil {
		s.handleError(w, &ErrStorage{Cause: err})
		return
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	log.Printf("Profile saved for %q", profile.Name)
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleExportProfile streams the profile as a Markdown document.
func (s *Server) handleExportProfile(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := report.WriteProfile(&buf, s.currentProfile()); err != nil {
		s.handleError(w, &ErrStorage{Cause: err})
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="profile.md"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing profile export: %v", err)
	}
}
