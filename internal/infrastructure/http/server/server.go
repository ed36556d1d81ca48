// Package server provides the HTTP server for the recommendation API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	router  *chi.Mux
	server  *http.Server
	service inbound.RecommendationService
	metrics *monitoring.Metrics
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	service inbound.RecommendationService,
	metrics *monitoring.Metrics,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		service: service,
		metrics: metrics,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Metrics(s.metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())

	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	h := handlers.NewRecommendationHandlers(s.service, s.metrics, s.logger, s.config.App.Version)

	r.Get("/health", h.HealthCheck)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		r.Post("/venues/{venueID}/recommendations", h.Recommend)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the router for tests
func (s *Server) Router() http.Handler {
	return s.router
}
