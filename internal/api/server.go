package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/outliner/internal/analyzer"
	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for the outline service.
type Server struct {
	router   chi.Router
	registry *analyzer.Registry
	tracker  *stats.Tracker
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server around a fully
// registered analyzer registry. The registry must not be mutated once the
// server starts taking requests.
func NewServer(reg *analyzer.Registry, tracker *stats.Tracker, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		registry: reg,
		tracker:  tracker,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints (auth is a no-op without a configured key).
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/outline", s.handleOutline)
		r.Get("/api/formats", s.handleFormats)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
