// Copyright (c) 2026 Artistly. All rights reserved.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackListing(t *testing.T) {
	emptyBefore := testutil.ToFloat64(listingQueries.WithLabelValues("empty"))
	matchedBefore := testutil.ToFloat64(listingQueries.WithLabelValues("matched"))

	TrackListing(0)
	TrackListing(3)
	TrackListing(1)

	assert.Equal(t, emptyBefore+1, testutil.ToFloat64(listingQueries.WithLabelValues("empty")))
	assert.Equal(t, matchedBefore+2, testutil.ToFloat64(listingQueries.WithLabelValues("matched")))
}

func TestInstrument_UsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Instrument())
	router.Get("/artists/{id}", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusTeapot)
	})

	counter := httpRequests.WithLabelValues(http.MethodGet, "/artists/{id}", "418")
	before := testutil.ToFloat64(counter)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/artists/42", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	TrackQuote()

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "artistly_quote_requests_total")
}
