// Copyright (c) 2026 Artistly. All rights reserved.

// Command api is the entry point for the Artistly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env file).
//  3. Connect to Redis when REDIS_URL is set, otherwise keep workspaces in memory.
//  4. Wire domain services and HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UjjwalTomar0808/artistly/internal/api"
	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/onboarding"
	"github.com/UjjwalTomar0808/artistly/internal/platform/config"
	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
	"github.com/UjjwalTomar0808/artistly/internal/platform/middleware"
	redisstore "github.com/UjjwalTomar0808/artistly/internal/platform/redis"
	"github.com/UjjwalTomar0808/artistly/internal/review"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load(".env")
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("redis", cfg.UsesRedis()),
	)

	// Background loops (limiter and workspace janitors) stop with this context.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Review workspaces ──────────────────────────────────────────────
	var (
		workspaces review.Store
		health     api.HealthDependencies
	)

	if cfg.UsesRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		workspaces = review.NewRedisStore(rdb, cfg.SessionTTL)
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	} else {
		memory := review.NewMemoryStore(cfg.SessionTTL)
		go memory.Cleanup(rootCtx)
		workspaces = memory
		log.Warn("review_workspaces_in_memory", slog.String("hint", "set REDIS_URL when running more than one replica"))
	}

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	catalogService := catalog.NewService(catalog.NewSeedRepository(), log)
	reviewService := review.NewService(review.SeedSubmissions(), workspaces, log)
	onboardingService := onboarding.NewService(cfg.OnboardingSubmitDelay, log)

	liveness, readiness := api.NewHealthHandlers(health, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(rootCtx)

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, limiter, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Catalog:    catalog.NewHandler(catalogService),
		Review:     review.NewHandler(reviewService),
		Onboarding: onboarding.NewHandler(onboardingService),
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", "artistly"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
