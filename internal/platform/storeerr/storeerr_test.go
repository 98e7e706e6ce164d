// Copyright (c) 2026 Artistly. All rights reserved.

package storeerr_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	"github.com/UjjwalTomar0808/artistly/internal/platform/storeerr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing key", redis.Nil, http.StatusNotFound},
		{"closed client", redis.ErrClosed, http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("hgetall: %w", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"unknown", errors.New("WRONGTYPE Operation against a key"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperr.As(storeerr.Wrap(tt.err, "load_workspace"))
			if assert.NotNil(t, appErr) {
				assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			}
		})
	}

	assert.NoError(t, storeerr.Wrap(nil, "noop"))
}
