package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
)

/*
TestMinPrice covers the first-digit-run extraction.
*/
func TestMinPrice(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"$800-1500", 800},
		{"$500-1000", 500},
		{"$2000+", 2000},
		{"from 1200 to 2000", 1200},
		{"$1,200", 1},
		{"contact us", 0},
		{"$99999999999999999999-100000000000000000000", math.MaxInt},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.MinPrice(tt.input))
		})
	}
}

/*
TestPriceBucket_Contains checks that both bounds are inclusive.
*/
func TestPriceBucket_Contains(t *testing.T) {
	tests := []struct {
		name     string
		bucket   catalog.PriceBucket
		minPrice int
		want     bool
	}{
		{"zero in lowest", catalog.PriceUpTo500, 0, true},
		{"500 in lowest", catalog.PriceUpTo500, 500, true},
		{"500 in second", catalog.Price500To1000, 500, true},
		{"501 not in lowest", catalog.PriceUpTo500, 501, false},
		{"1000 in second", catalog.Price500To1000, 1000, true},
		{"1000 in third", catalog.Price1000To1500, 1000, true},
		{"1500 in third", catalog.Price1000To1500, 1500, true},
		{"1500 in fourth", catalog.Price1500To2000, 1500, true},
		{"1800 in fourth", catalog.Price1500To2000, 1800, true},
		{"2000 in fourth", catalog.Price1500To2000, 2000, true},
		{"2000 in open bucket", catalog.Price2000AndOver, 2000, true},
		{"large in open bucket", catalog.Price2000AndOver, 50000, true},
		{"1999 not in open bucket", catalog.Price2000AndOver, 1999, false},
		{"unknown bucket", catalog.PriceBucket("$9-10"), 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bucket.Contains(tt.minPrice))
		})
	}
}

/*
TestPriceBucket_ClassifiesMinimumOnly documents that the upper end of a range is ignored.
*/
func TestPriceBucket_ClassifiesMinimumOnly(t *testing.T) {
	minPrice := catalog.MinPrice("$1800-2500")

	assert.True(t, catalog.Price1500To2000.Contains(minPrice))
	assert.False(t, catalog.Price2000AndOver.Contains(minPrice))
}

/*
TestPriceBucket_OversizedPriceIsTopBucket keeps an absurdly long digit run out
of the cheapest bucket.
*/
func TestPriceBucket_OversizedPriceIsTopBucket(t *testing.T) {
	minPrice := catalog.MinPrice("$99999999999999999999+")

	assert.True(t, catalog.Price2000AndOver.Contains(minPrice))
	assert.False(t, catalog.PriceUpTo500.Contains(minPrice))
}

func TestPriceBucket_Valid(t *testing.T) {
	for _, bucket := range catalog.PriceBuckets {
		assert.True(t, bucket.Valid(), bucket)
	}
	assert.False(t, catalog.PriceBucket("$2000-3000").Valid())
}
