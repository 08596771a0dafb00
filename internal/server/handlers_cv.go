package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/careerbridge/internal/report"
)

type analyzeRequest struct {
	CVText         string `json:"cv_text"`
	JobDescription string `json:"job_description"`
}

type coverLetterRequest struct {
	CVText         string `json:"cv_text"`
	JobDescription string `json:"job_description"`
}

// handleAnalyzeCV reviews the submitted CV text against French market
// standards.
func (s *Server) handleAnalyzeCV(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	analysis, err := s.tailor.Analyze(r.Context(), req.CVText, req.JobDescription)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleSaveAnalysis snapshots the current analysis into the store.
func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	saved, err := s.tailor.Save(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, saved)
}

// handleCoverLetter generates a tailored cover letter from the current
// analysis and the submitted job description.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req coverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	letter, err := s.tailor.GenerateCoverLetter(r.Context(), req.CVText, req.JobDescription)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"coverLetter": letter})
}

// handleGetSavedAnalysis returns the persisted analysis snapshot.
func (s *Server) handleGetSavedAnalysis(w http.ResponseWriter, r *http.Request) {
	saved, err := s.store.LoadAnalysis(r.Context())
	if err != nil {
		s.handleError(w, &ErrStorage{Cause: err})
		return
	}
	if saved == nil {
		s.handleError(w, &ErrNotFound{Resource: "saved analysis"})
		return
	}
	s.jsonResponse(w, http.StatusOK, saved)
}

// handleExportSavedAnalysis streams the saved analysis as Markdown.
func (s *Server) handleExportSavedAnalysis(w http.ResponseWriter, r *http.Request) {
	saved, err := s.store.LoadAnalysis(r.Context())
	if err != nil {
		s.handleError(w, &ErrStorage{Cause: err})
		return
	}
	if saved == nil {
		s.handleError(w, &ErrNotFound{Resource: "saved analysis"})
		return
	}

	var buf bytes.Buffer
	if err := report.WriteSavedAnalysis(&buf, *saved); err != nil {
		s.handleError(w, &ErrStorage{Cause: err})
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cv-analysis.md"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing analysis export: %v", err)
	}
}
