// Copyright (c) 2026 Artistly. All rights reserved.

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, Count) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements where the predicate evaluates to true, in input order.
//
// The result is a fresh slice (never nil, never aliasing input), so callers may
// encode it as an empty JSON array and the source stays untouched.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Count returns how many elements satisfy the predicate.
func Count[T any](input []T, predicate func(T) bool) int {
	return Reduce(input, 0, func(total int, v T) int {
		if predicate(v) {
			return total + 1
		}
		return total
	})
}

// Find returns the index of the first element satisfying the predicate, or -1.
func Find[T any](input []T, predicate func(T) bool) int {
	for i, v := range input {
		if predicate(v) {
			return i
		}
	}
	return -1
}

// Reduce reduces a slice into a single accumulated result using the reducer function.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}
