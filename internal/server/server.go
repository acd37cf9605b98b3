// Package server provides the HTTP REST API around the match scoring engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
	"github.com/jonathan/resume-matcher/internal/skills"
)

// Server is the HTTP server wiring the scoring engine to storage.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	engine      *matching.Engine
	vocabulary  []string
	validate    *validator.Validate
	jwtService  *JWTService
	passwords   *config.PasswordConfig
	rateLimiter *ratelimit.Limiter
	useBrowser  bool
}

// Config holds server configuration.
type Config struct {
	Port           int
	DatabaseURL    string
	Vocabulary     []string
	FuzzyThreshold float64
	UseBrowser     bool
}

// New creates a server instance and connects to the database.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var engineOpts []skills.Option
	if cfg.FuzzyThreshold > 0 {
		engineOpts = append(engineOpts, skills.WithFuzzyThreshold(cfg.FuzzyThreshold))
	}

	s := &Server{
		db:          database,
		engine:      matching.NewEngine(engineOpts...),
		vocabulary:  cfg.Vocabulary,
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		useBrowser:  cfg.UseBrowser,
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.passwords = passwordConfig

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	// Stateless one-shot scoring
	mux.HandleFunc("POST /score", s.handleScore)

	// Resumes
	mux.Handle("POST /resumes", s.requireAuth(s.handleCreateResume))
	mux.Handle("GET /resumes", s.requireAuth(s.handleListResumes))
	mux.Handle("GET /resumes/{id}", s.requireAuth(s.handleGetResume))
	mux.Handle("DELETE /resumes/{id}", s.requireAuth(s.handleDeleteResume))

	// Jobs
	mux.Handle("POST /jobs", s.requireAuth(s.handleCreateJob))
	mux.Handle("GET /jobs", s.requireAuth(s.handleListJobs))
	mux.Handle("GET /jobs/{id}", s.requireAuth(s.handleGetJob))
	mux.Handle("DELETE /jobs/{id}", s.requireAuth(s.handleDeleteJob))

	// Matches
	mux.Handle("POST /matches", s.requireAuth(s.handleCreateMatch))
	mux.Handle("GET /matches/{id}", s.requireAuth(s.handleGetMatch))
	mux.Handle("GET /resumes/{id}/matches", s.requireAuth(s.handleListResumeMatches))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit rejects clients exceeding the request rate.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.rateLimiter.Allow(clientID(r))

		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
		}

		if !info.Allowed {
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":    "rate_limit_exceeded",
				"limit":    info.Limit,
				"reset_at": info.ResetTime.Format(time.RFC3339),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID extracts the client identifier (IP) from the request.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation on it.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return &ErrValidation{Field: verrs[0].Field(), Message: "failed " + verrs[0].Tag() + " validation"}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}
