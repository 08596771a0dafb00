package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jonathan/careerbridge/internal/gateway"
	"github.com/jonathan/careerbridge/internal/interview"
	"github.com/jonathan/careerbridge/internal/search"
	"github.com/jonathan/careerbridge/internal/store"
	"github.com/jonathan/careerbridge/internal/tailor"
	"github.com/jonathan/careerbridge/internal/types"
)

// Server owns the page controllers and the single user profile. It is the
// only writer of the profile; controllers read it through a getter.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	store      *store.Store
	gateway    *gateway.Gateway

	search    *search.Controller
	tailor    *tailor.Controller
	interview *interview.Session

	mu            sync.RWMutex
	profile       types.UserProfile
	interviewDone bool
}

// Config holds server configuration
type Config struct {
	Port   int
	Store  *store.Store
	Client gateway.Client
}

// New creates a new server instance. The persisted profile is loaded once at
// startup; a broken store falls back to the default profile.
func New(cfg Config) *Server {
	s := &Server{
		store:   cfg.Store,
		gateway: gateway.New(cfg.Client),
	}
	s.profile = cfg.Store.LoadProfile(context.Background())

	s.search = search.New(s.gateway, s.currentProfile)
	s.tailor = tailor.New(s.gateway, cfg.Store, nil)
	s.interview = interview.NewSession(s.gateway, s.currentProfile)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/pages/{page}", s.handleGetPage)

	mux.HandleFunc("GET /v1/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /v1/profile", s.handleUpdateProfile)
	mux.HandleFunc("GET /v1/profile/export", s.handleExportProfile)

	mux.HandleFunc("POST /v1/jobs/search", s.handleJobSearch)

	mux.HandleFunc("POST /v1/cv/analyze", s.handleAnalyzeCV)
	mux.HandleFunc("POST /v1/cv/save", s.handleSaveAnalysis)
	mux.HandleFunc("POST /v1/cv/cover-letter", s.handleCoverLetter)
	mux.HandleFunc("GET /v1/cv/saved", s.handleGetSavedAnalysis)
	mux.HandleFunc("GET /v1/cv/saved/export", s.handleExportSavedAnalysis)

	mux.HandleFunc("POST /v1/interview/start", s.handleInterviewStart)
	mux.HandleFunc("POST /v1/interview/answer", s.handleInterviewAnswer)
	mux.HandleFunc("GET /v1/interview", s.handleGetInterview)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = s.withLogging(s.withCORS(mux))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Grounded searches can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.store.Close(); err != nil {
		log.Printf("Store close failed: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// currentProfile is the read side of the single-writer profile.
func (s *Server) currentProfile() types.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps an error to its status and writes the JSON body.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	message := err.Error()
	if status == http.StatusBadGateway {
		// Provider details stay in the log, not the response.
		message = "the AI service is currently unavailable"
	}
	s.errorResponse(w, status, message)
}
