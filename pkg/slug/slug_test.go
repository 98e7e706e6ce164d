// Copyright (c) 2026 Artistly. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UjjwalTomar0808/artistly/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Musicians", "musicians"},
		{"DJs", "djs"},
		{"New York, NY", "new-york-ny"},
		{"Músicos & Bailarines", "musicos-bailarines"},
		{"  --Spoken   Word--  ", "spoken-word"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, slug.Equal("musicians", "Musicians"))
	assert.True(t, slug.Equal("djs", "DJs"))
	assert.False(t, slug.Equal("dancers", "DJs"))
	assert.False(t, slug.Equal("", "  "))
}
