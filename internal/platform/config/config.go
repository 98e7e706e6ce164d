// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when present; real environment variables
always take precedence over it.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Redis, middleware) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Artistly API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Key-Value Store (Redis). Empty keeps review workspaces in process memory.
	RedisURL string `env:"REDIS_URL"`

	// SessionTTL is how long an idle browsing session keeps its review decisions.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// OnboardingSubmitDelay simulates the latency of the application submit call.
	OnboardingSubmitDelay time.Duration `env:"ONBOARDING_SUBMIT_DELAY" envDefault:"2s"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"artistly.app"`

	// Per-IP token bucket
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config] struct.
func Load(envFiles ...string) (*Config, error) {

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read env file: %w", err)
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects values that would leave the server unusable.
func (c *Config) validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.OnboardingSubmitDelay < 0 {
		return fmt.Errorf("config: ONBOARDING_SUBMIT_DELAY must not be negative, got %s", c.OnboardingSubmitDelay)
	}
	// The simulated submit must finish inside the request deadline.
	if c.OnboardingSubmitDelay >= constants.GlobalRequestTimeout {
		return fmt.Errorf("config: ONBOARDING_SUBMIT_DELAY must be below %s, got %s",
			constants.GlobalRequestTimeout, c.OnboardingSubmitDelay)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit must be positive (rps=%v burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesRedis reports whether review workspaces should be stored in Redis.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

// OriginSuffix implements the CORS policy lookup used by the middleware chain.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
