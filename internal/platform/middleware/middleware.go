// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package middleware provides the cross-cutting HTTP processing chain.

It acts as a series of decorators around the standard http.Handler, injecting
traceability, safety, and session scoping into every request lifecycle.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Session: Browsing session identification for per-visitor review workspaces.
  - Log: Structured Activity logging (slog).
  - Guard: Rate limiting and CORS validation.
  - Safe: Panic recovery to prevent server crashes.
*/
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
	"github.com/UjjwalTomar0808/artistly/internal/platform/ctxutil"
	"github.com/UjjwalTomar0808/artistly/internal/platform/respond"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request for log tracing.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Check if the client already provided an ID
			requestID := request.Header.Get(constants.HeaderXRequestID)

			// 2. Generate a new one if missing (UUID v7 is time-sortable)
			if requestID == "" {
				requestID = newID()
			}

			// 3. Inject into context and response headers
			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Browsing Sessions

// Session identifies the browsing session that owns per-visitor state.
//
// The identifier is taken from the X-Session-ID header, then the session
// cookie. A fresh one is issued (and set as cookie) when neither is present or
// the presented value is not a UUID.
func Session(ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			sessionID := request.Header.Get(constants.HeaderXSessionID)
			if sessionID == "" {
				if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
					sessionID = cookie.Value
				}
			}

			if _, err := uuid.Parse(sessionID); err != nil {
				sessionID = newID()
			}

			// Refresh the cookie so its lifetime follows the idle TTL
			http.SetCookie(writer, &http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			writer.Header().Set(constants.HeaderXSessionID, sessionID)

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSessionID(request.Context(), sessionID)))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// StructuredLogger logs every request status and performance metrics.
// It also injects a request-specific logger into the context.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			ctx := request.Context()

			// 1. Create a sub-logger for this specific request
			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(ctx)),
				slog.String("session_id", ctxutil.GetSessionID(ctx)),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			// 2. Inject this logger into the context for downstream use
			ctx = ctxutil.WithLogger(ctx, requestLogger)
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request.WithContext(ctx))

			// 3. Final log entry after the request is finished
			logLevel := slog.LevelInfo
			if wrappedWriter.status >= 500 {
				logLevel = slog.LevelError
			} else if wrappedWriter.status >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished",
				slog.Int("status", wrappedWriter.status),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			)
		})
	}
}

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per IP using the token bucket algorithm.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     rate.Limit
	burst   int
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst per IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

// Cleanup evicts idle client entries until ctx is cancelled.
func (limiter *RateLimiter) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.evictIdle(time.Now())
		case <-ctx.Done():
			return
		}
	}
}

func (limiter *RateLimiter) evictIdle(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for ip, clientInfo := range limiter.clients {
		if now.Sub(clientInfo.lastSeen) > constants.RateLimitClientTTL {
			delete(limiter.clients, ip)
		}
	}
}

func (limiter *RateLimiter) allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	clientInfo, found := limiter.clients[ip]
	if !found {
		clientInfo = &rateLimitClient{limiter: rate.NewLimiter(limiter.rps, limiter.burst)}
		limiter.clients[ip] = clientInfo
	}
	clientInfo.lastSeen = time.Now()

	return clientInfo.limiter.Allow()
}

// retryAfter is the whole number of seconds until one token is refilled.
func (limiter *RateLimiter) retryAfter() int {
	if limiter.rps <= 0 || limiter.rps == rate.Inf {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(limiter.rps))))
}

// Middleware rejects requests with 429 and a Retry-After hint once the
// client's bucket is empty.
func (limiter *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limiter.allow(RealIP(request)) {
				seconds := limiter.retryAfter()
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))
				respond.Error(writer, request, apperr.RateLimited(seconds))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// # Reliability & Safety

// PanicRecovery recovers from panics, logs stack trace, and returns 500.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stackTrace := make([]byte, 2048)
					length := runtime.Stack(stackTrace, false)

					ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
						slog.Any("error", err),
						slog.String("stack", string(stackTrace[:length])),
					)

					writeError(writer, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
				}
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// AppConfig defines the behavior needed by the CORS middleware.
type AppConfig interface {
	IsDevelopment() bool
	OriginSuffix() string
}

// CORS handles Cross-Origin Resource Sharing based on application environment.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Check the Origin header
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Strict in PROD, open in DEV
			isAllowed := cfg.IsDevelopment() || originMatches(origin, cfg.OriginSuffix())

			// 3. Inject standard CORS headers if authorized
			if isAllowed {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, X-Request-ID, X-Session-ID")
				header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID, X-Session-ID")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
			}

			// 4. Handle pre-flight requests (OPTIONS)
			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Middleware Helpers

// originMatches reports whether origin's host is suffix itself or one of its
// subdomains. Ports and schemes are ignored; lookalike hosts that merely end
// in the same letters do not match.
func originMatches(origin, suffix string) bool {
	parsed, err := url.Parse(origin)
	if err != nil || suffix == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	suffix = strings.ToLower(strings.TrimPrefix(suffix, "."))
	return host == suffix || strings.HasSuffix(host, "."+suffix)
}

// RealIP extracts client IP, respecting common proxy headers.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

// newID returns a UUID v7, falling back to v4 if the clock source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// writeError outputs a simple JSON error payload.
func writeError(writer http.ResponseWriter, status int, code, message string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{
		constants.FieldCode:  code,
		constants.FieldError: message,
	})
}
