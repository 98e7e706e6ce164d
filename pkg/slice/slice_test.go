// Copyright (c) 2026 Artistly. All rights reserved.

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UjjwalTomar0808/artistly/pkg/slice"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilter(t *testing.T) {
	input := []int{1, 2, 3, 4, 6}

	result := slice.Filter(input, isEven)
	assert.Equal(t, []int{2, 4, 6}, result)

	// Source is untouched and the result does not alias it
	result[0] = 99
	assert.Equal(t, []int{1, 2, 3, 4, 6}, input)

	// Empty results are non-nil
	none := slice.Filter(input, func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.NotNil(t, slice.Filter[int](nil, isEven))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, slice.Count([]int{1, 2, 3, 4, 6}, isEven))
	assert.Zero(t, slice.Count(nil, isEven))
}

func TestFind(t *testing.T) {
	assert.Equal(t, 1, slice.Find([]int{1, 2, 4}, isEven))
	assert.Equal(t, -1, slice.Find([]int{1, 3}, isEven))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"a", "bb"}, slice.Map([]int{1, 2}, func(n int) string {
		out := ""
		for range n {
			out += string(rune('a' + n - 1))
		}
		return out
	}))
	assert.Nil(t, slice.Map[int, string](nil, func(int) string { return "" }))
}
