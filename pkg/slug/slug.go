// Copyright (c) 2026 Artistly. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the lowercase identifiers used by category links on the home page
// (e.g., "musicians", "djs"). This package handles normalization, accent removal,
// and character sanitization so that "Músicos & DJs" and "musicos-djs" compare equal.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (accents).
// 2. Converts to lowercase.
// 3. Replaces non-alphanumeric characters with hyphens.
// 4. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Equal reports whether two strings produce the same non-empty slug.
func Equal(a, b string) bool {
	sa := From(a)
	return sa != "" && sa == From(b)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
