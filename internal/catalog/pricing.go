package catalog

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// PriceBucket is a coarse price band used to filter the listing.
type PriceBucket string

const (
	PriceUpTo500     PriceBucket = "$0-500"
	Price500To1000   PriceBucket = "$500-1000"
	Price1000To1500  PriceBucket = "$1000-1500"
	Price1500To2000  PriceBucket = "$1500-2000"
	Price2000AndOver PriceBucket = "$2000+"
)

// PriceBuckets lists every bucket in ascending order.
var PriceBuckets = []PriceBucket{PriceUpTo500, Price500To1000, Price1000To1500, Price1500To2000, Price2000AndOver}

// unbounded marks a bucket without an upper limit.
const unbounded = -1

var bucketBounds = map[PriceBucket][2]int{
	PriceUpTo500:     {0, 500},
	Price500To1000:   {500, 1000},
	Price1000To1500:  {1000, 1500},
	Price1500To2000:  {1500, 2000},
	Price2000AndOver: {2000, unbounded},
}

var digits = regexp.MustCompile(`\d+`)

// MinPrice extracts the representative minimum of a price range string: the
// first run of digits ("$800-1500" → 800). It returns 0 when there is none.
//
// Thousands separators are not understood; "$1,200" yields 1. A run too long
// for an int saturates at math.MaxInt so it still sorts into the top bucket.
func MinPrice(priceRange string) int {
	token := digits.FindString(priceRange)
	if token == "" {
		return 0
	}

	value, err := strconv.Atoi(token)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return value
}

// Contains reports whether a minimum price falls in the bucket. Both bounds are
// inclusive, so 500, 1000, 1500 and 2000 belong to two adjacent buckets.
//
// This classifies the extracted minimum only: "$1800-2500" is in "$1500-2000".
func (bucket PriceBucket) Contains(minPrice int) bool {
	bounds, ok := bucketBounds[bucket]
	if !ok {
		return false
	}

	lower, upper := bounds[0], bounds[1]
	if minPrice < lower {
		return false
	}
	return upper == unbounded || minPrice <= upper
}

// Valid reports whether the bucket is one of [PriceBuckets].
func (bucket PriceBucket) Valid() bool {
	_, ok := bucketBounds[bucket]
	return ok
}
