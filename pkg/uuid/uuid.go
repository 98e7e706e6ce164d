// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package uuid provides time-ordered unique identifiers for the platform.

It wraps google/uuid to generate Version 7 values. They are used as reference
numbers on acknowledgments (onboarding applications, quote requests) so that
support staff can correlate a visitor's receipt with the server logs.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
