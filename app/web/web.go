// Package web implements the JSON HTTP API for the job board
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/jobdesk/jobdesk/app/store"
)

// Server represents the web server
type Server struct {
	store     *store.Store
	notifier  Notifier // optional, nil disables application event notifications
	version   string
	startTime time.Time
}

// Notifier defines the delivery of application lifecycle events to the
// configured destinations
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Config holds server configuration
type Config struct {
	Store    *store.Store
	Notifier Notifier // optional
	Version  string
}

// createUserLimiter caps account creation rate, the only abuse-prone endpoint
var createUserLimiter = tollbooth.NewLimiter(10, nil)

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("web server initialization failed: store is required")
	}
	return &Server{
		store:     cfg.Store,
		notifier:  cfg.Notifier,
		version:   cfg.Version,
		startTime: time.Now(),
	}, nil
}

// Run starts the web server and blocks until the context is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobdesk", "jobdesk", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024), // 64KB max request size
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache) // prevent caching of API responses

		api.HandleFunc("GET /status", s.handleStatus)

		api.With(tollbooth.HTTPMiddleware(createUserLimiter)).HandleFunc("POST /users", s.handleCreateUser)
		api.HandleFunc("GET /users/{id}", s.handleGetUser)
		api.HandleFunc("GET /users/{id}/applications", s.handleApplicationsByUser)

		api.HandleFunc("GET /jobs", s.handleListJobs)
		api.HandleFunc("POST /jobs", s.handleCreateJob)
		api.HandleFunc("GET /jobs/{id}", s.handleGetJob)
		api.HandleFunc("GET /jobs/{id}/applications", s.handleApplicationsByJob)
		api.HandleFunc("GET /employers/{id}/jobs", s.handleJobsByEmployer)

		api.HandleFunc("POST /applications", s.handleCreateApplication)
		api.HandleFunc("PATCH /applications/{id}/status", s.handleUpdateApplicationStatus)

		api.HandleFunc("GET /categories", s.handleListCategories)
		api.HandleFunc("POST /categories", s.handleCreateCategory)
		api.HandleFunc("GET /categories/{id}", s.handleGetCategory)
	})

	return router
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response with the {"message": ...} body shape
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]string{"message": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[WARN] failed to encode JSON error response: %v", err)
	}
}

// notify sends an application event in the background, errors are logged and
// never surfaced to API clients
func (s *Server) notify(text string) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.notifier.Send(ctx, text); err != nil {
			log.Printf("[WARN] failed to send notification: %v", err)
		}
	}()
}
