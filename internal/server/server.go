// Package server provides the HTTP REST API for the job finder core.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/db"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/server/ratelimit"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/tailoring"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Store is the persistence surface the API needs
type Store interface {
	CreateResume(ctx context.Context, userID uuid.UUID, displayName, storagePath string) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.ResumeRecord, error)
	CreateJobPosting(ctx context.Context, posting *types.JobPosting) (uuid.UUID, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*db.JobPostingRecord, error)
	ListJobPostings(ctx context.Context, limit int) ([]db.JobPostingRecord, error)
	CreateApplication(ctx context.Context, userID, jobID, resumeID uuid.UUID) (uuid.UUID, error)
	SaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]db.SavedJobRecord, error)
}

// Ingestor runs the resume ingestion pipeline
type Ingestor interface {
	IngestResume(ctx context.Context, id uuid.UUID) (*types.RawParsedResume, error)
}

// Tailorer produces a tailored resume for a job posting
type Tailorer interface {
	Tailor(ctx context.Context, resume *types.Resume, job *types.JobPosting, sections types.SectionSelection, selectedSkills []string, base *types.MatchData) (*tailoring.Result, error)
}

// Config holds server configuration
type Config struct {
	Port          int
	StorageBucket string
}

// Dependencies are the wired collaborators the handlers call into
type Dependencies struct {
	Store    Store
	Ingestor Ingestor
	Engine   Tailorer
	Logger   *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	store         Store
	ingestor      Ingestor
	engine        Tailorer
	rateLimiter   *ratelimit.Limiter
	logger        *zap.Logger
	storageBucket string
}

// New creates a new server instance
func New(cfg Config, deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		store:         deps.Store,
		ingestor:      deps.Ingestor,
		engine:        deps.Engine,
		logger:        logger,
		storageBucket: cfg.StorageBucket,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume endpoints
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("POST /resumes/{id}/ingest", s.handleIngestResume)

	// Job posting endpoints
	mux.HandleFunc("POST /job-postings", s.handleCreateJobPosting)
	mux.HandleFunc("GET /job-postings", s.handleListJobPostings)
	mux.HandleFunc("GET /job-postings/{id}", s.handleGetJobPosting)
	mux.HandleFunc("POST /job-postings/{id}/save", s.handleSaveJob)
	mux.HandleFunc("POST /job-postings/{id}/apply", s.handleApply)
	mux.HandleFunc("GET /users/{id}/saved-jobs", s.handleListSavedJobs)

	// Matching and tailoring
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /tailor", s.handleTailor)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // tailoring calls a text-generation API
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the full middleware-wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
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
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	})
}
