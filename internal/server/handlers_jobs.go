package server

import (
	"encoding/json"
	"net/http"
)

type jobSearchRequest struct {
	Field      string `json:"field"`
	SearchTerm string `json:"search_term"`
}

// handleJobSearch runs a grounded job search with the given overrides on top
// of the saved profile.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	var req jobSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	result, err := s.search.Search(r.Context(), req.Field, req.SearchTerm)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
