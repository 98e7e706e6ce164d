// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] to provide fault-tolerant conversions (falling back to a
default instead of returning an error). This is useful in API handlers parsing
optional query parameters such as "verified=true" or "limit=4".

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0", "on").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	// Checkbox widgets submit "on"
	if strings.EqualFold(s, "on") {
		return true
	}

	v, _ := strconv.ParseBool(s)
	return v
}
