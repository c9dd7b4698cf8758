// Package server provides the HTTP API for the screener.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperjump/screener/internal/config"
	"github.com/hyperjump/screener/internal/pipeline"
	"github.com/hyperjump/screener/internal/storage"
	"go.uber.org/zap"
)

// Server is the HTTP server for the screener API.
type Server struct {
	evaluator *pipeline.Evaluator
	store     storage.Store
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	evaluator *pipeline.Evaluator,
	store storage.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		evaluator: evaluator,
		store:     store,
		config:    cfg,
		logger:    logger,
	}
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/evaluations", s.handleEvaluate)
		r.Get("/evaluations", s.handleListEvaluations)
		r.Get("/evaluations/summary", s.handleSummary)
		r.Delete("/evaluations", s.handleClearEvaluations)
		r.Get("/skills", s.handleSkills)
		r.Post("/skills/derive", s.handleDeriveSkills)
		r.Get("/status", s.handleStatus)
	})
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
