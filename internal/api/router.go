// Package api provides the REST API and web UI for the calculator service.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/config"
	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
)

// Server represents the API server.
type Server struct {
	cfg     *config.Config
	router  chi.Router
	session *calc.Session
}

// NewServer creates a new API server around one calculator session.
func NewServer(cfg *config.Config, session *calc.Session) *Server {
	s := &Server{
		cfg:     cfg,
		session: session,
	}

	s.setupRouter()
	return s
}

// setupRouter configures all routes.
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health and version endpoints
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	// Calculator API routes
	r.Post("/evaluate", s.handleEvaluate)
	r.Post("/actions/{action}", s.handleAction)

	r.Route("/modes", func(r chi.Router) {
		r.Get("/", s.handleGetModes)
		r.Post("/{mode}", s.handleToggleMode)
	})

	r.Route("/history", func(r chi.Router) {
		r.Get("/", s.handleGetHistory)
		r.Delete("/", s.handleClearHistory)
		r.Delete("/{id}", s.handleDeleteHistoryEntry)
	})

	// Web UI routes (served from /web)
	r.Get("/", s.handleWebRoot)
	r.Get("/web/*", s.handleWebAssets)
	r.Post("/web/evaluate", s.handleWebEvaluate)
	r.Post("/web/actions/{action}", s.handleWebAction)
	r.Post("/web/modes/{mode}", s.handleWebModeToggle)
	r.Delete("/web/history", s.handleWebHistoryClear)
	r.Delete("/web/history/{id}", s.handleWebHistoryDelete)

	s.router = r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
