// Copyright (c) 2026 Artistly. All rights reserved.

// Package storeerr provides a bridge between low-level storage errors and
// higher-level application errors.
package storeerr

import (
	"context"
	"errors"
	"net"

	"github.com/redis/go-redis/v9"

	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a storage error and wraps it into a meaningful [apperr.AppError].
// It hides backend details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Missing keys
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}

	// 2. Unreachable backend or exhausted deadline: the client may retry
	var netErr net.Error
	if errors.Is(err, redis.ErrClosed) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return apperr.ServiceUnavailable("Session storage is unavailable").WithCause(errors.Join(errors.New(action), err))
	}

	// 3. Everything else is unexpected
	return apperr.Internal(errors.Join(errors.New(action), err))
}
