// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/onboarding"
	"github.com/UjjwalTomar0808/artistly/internal/platform/config"
	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
	"github.com/UjjwalTomar0808/artistly/internal/platform/metrics"
	"github.com/UjjwalTomar0808/artistly/internal/platform/middleware"
	"github.com/UjjwalTomar0808/artistly/internal/review"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Catalog serves the artist listing and category cards.
	Catalog *catalog.Handler

	// Review serves the manager dashboard.
	Review *review.Handler

	// Onboarding serves the artist application wizard.
	Onboarding *onboarding.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The limiter's cleanup loop is owned by the caller.
func NewServer(cfg *config.Config, log *slog.Logger, limiter *middleware.RateLimiter, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.Session(cfg.SessionTTL, cfg.IsProduction()))
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Instrument())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Middleware())
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unversioned probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/artists", h.Catalog.RegisterRoutes)
		api.Route("/categories", h.Catalog.RegisterCategoryRoutes)
		api.Route("/dashboard", h.Review.RegisterRoutes)
		api.Route("/onboarding", h.Onboarding.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
