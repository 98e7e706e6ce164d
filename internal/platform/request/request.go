// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/UjjwalTomar0808/artistly/internal/platform/validate"
)

// maxBodyBytes bounds JSON request bodies; onboarding payloads are the largest.
const maxBodyBytes = 64 << 10

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a positive integer.

Returns:
  - error: a VALIDATION_ERROR naming the parameter if it is not a positive integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(Param(request, name))
	if err != nil || value <= 0 {
		return 0, validate.FieldErr(name, "Must be a positive integer")
	}
	return value, nil
}
