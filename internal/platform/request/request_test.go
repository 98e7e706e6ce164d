// Copyright (c) 2026 Artistly. All rights reserved.

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	requestutil "github.com/UjjwalTomar0808/artistly/internal/platform/request"
)

func withParam(name, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(name, value)
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
}

/*
TestIntParam checks positive integer parsing of route parameters.
*/
func TestIntParam(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		isValid bool
	}{
		{"positive", "42", 42, true},
		{"zero", "0", 0, false},
		{"negative", "-3", 0, false},
		{"not_a_number", "abc", 0, false},
		{"missing", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := withParam("id", tt.value)
			assert.Equal(t, tt.value, requestutil.Param(request, "id"))

			got, err := requestutil.IntParam(request, "id")
			if !tt.isValid {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestDecodeJSON rejects malformed bodies with a validation error.
*/
func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Aria"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &target))
	assert.Equal(t, "Aria", target.Name)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, requestutil.DecodeJSON(request, &target))
}
