// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package metrics exposes Prometheus collectors for the HTTP layer and the
domain engines.

Collectors are registered once on the default registry via promauto and
served by [Handler] on /metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "artistly"

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	listingQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artist_listing_queries_total",
			Help:      "Artist listing evaluations, split by empty and non-empty results",
		},
		[]string{"result"},
	)

	submissionDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_decisions_total",
			Help:      "Status transitions applied to artist submissions",
		},
		[]string{"status"},
	)

	onboardingApplications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboarding_applications_total",
			Help:      "Onboarding applications by outcome",
		},
		[]string{"outcome"},
	)

	quoteRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_requests_total",
			Help:      "Quote requests acknowledged",
		},
	)
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// # Domain Tracking

// TrackListing records one evaluation of the artist listing.
func TrackListing(matched int) {
	result := "matched"
	if matched == 0 {
		result = "empty"
	}
	listingQueries.WithLabelValues(result).Inc()
}

// TrackDecision records one applied submission status transition.
func TrackDecision(status string) {
	submissionDecisions.WithLabelValues(status).Inc()
}

// TrackApplication records an onboarding submit attempt ("accepted", "invalid" or "cancelled").
func TrackApplication(outcome string) {
	onboardingApplications.WithLabelValues(outcome).Inc()
}

// TrackQuote records an acknowledged quote request.
func TrackQuote() {
	quoteRequests.Inc()
}

// # HTTP Instrumentation

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// Instrument records request count and latency per chi route pattern.
//
// The route pattern (e.g. "/api/v1/artists/{id}") keeps label cardinality bounded.
func Instrument() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(recorder, request)

			route := "unmatched"
			if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			httpRequests.WithLabelValues(request.Method, route, strconv.Itoa(recorder.status)).Inc()
			httpDuration.WithLabelValues(request.Method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}
