// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, header names and storage keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: IP tracking TTLs for the token bucket limiter.
  - Sessions: Cookie and header names identifying a browsing session.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "artistly-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// It must exceed the simulated onboarding submit delay.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 10 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 15 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Sessions

const (
	// SessionCookieName identifies the browsing session that owns a review workspace.
	SessionCookieName = "artistly_session"

	// SessionCleanupInterval is how often idle in-memory workspaces are evicted.
	SessionCleanupInterval = 5 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXSessionID    = "X-Session-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes

const (
	// RedisPrefixReviewSession keys the per-session hash of submission status decisions.
	RedisPrefixReviewSession = "review:session:"
)
