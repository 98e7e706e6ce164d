package catalog

import (
	"net/url"
	"strings"

	"github.com/UjjwalTomar0808/artistly/internal/platform/validate"
	"github.com/UjjwalTomar0808/artistly/pkg/convert"
	"github.com/UjjwalTomar0808/artistly/pkg/slice"
	"github.com/UjjwalTomar0808/artistly/pkg/slug"
)

// Criteria is the set of listing filters a visitor has selected.
//
// The zero value imposes no constraint. Criteria is a value: changing a filter
// produces a new Criteria, and [Criteria.Clear] resets every field at once.
type Criteria struct {
	Category     Category     `json:"category,omitempty"`
	Location     string       `json:"location,omitempty"`
	PriceRange   PriceBucket  `json:"price_range,omitempty"`
	Availability Availability `json:"availability,omitempty"`
	VerifiedOnly bool         `json:"verified,omitempty"`
}

// Clear returns criteria with every field unset.
func (c Criteria) Clear() Criteria {
	return Criteria{}
}

// HasActive reports whether any filter is set.
func (c Criteria) HasActive() bool {
	return c != Criteria{}
}

// Matches reports whether the artist satisfies every set filter.
func (c Criteria) Matches(artist Artist) bool {
	if c.Category != "" && artist.Category != c.Category {
		return false
	}
	if c.Location != "" && artist.Location != c.Location {
		return false
	}
	if c.PriceRange != "" && !c.PriceRange.Contains(MinPrice(artist.PriceRange)) {
		return false
	}
	if c.Availability != "" && artist.Availability != c.Availability {
		return false
	}
	if c.VerifiedOnly && !artist.Verified {
		return false
	}
	return true
}

// Filter returns the artists matching c, in source order. The source is not modified.
func Filter(artists []Artist, c Criteria) []Artist {
	return slice.Filter(artists, c.Matches)
}

// ViewMode is the presentational layout of the listing.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Values encodes the criteria as query parameters, omitting unset fields.
func (c Criteria) Values() url.Values {
	values := url.Values{}
	if c.Category != "" {
		values.Set(FieldCategory, string(c.Category))
	}
	if c.Location != "" {
		values.Set(FieldLocation, c.Location)
	}
	if c.PriceRange != "" {
		values.Set(FieldPriceRange, string(c.PriceRange))
	}
	if c.Availability != "" {
		values.Set(FieldAvailability, string(c.Availability))
	}
	if c.VerifiedOnly {
		values.Set(FieldVerified, "true")
	}
	return values
}

// ParseCriteria reads listing filters and the view mode from query parameters.
//
// Empty values and the select-widget sentinels "all" and "any" leave a filter
// unset. Categories, locations and price ranges also match by slug, so
// "musicians", "new-york-ny" and "500-1000" are accepted. Unknown categories,
// price ranges, availability states and view modes are validation errors; an
// unknown location is kept verbatim and simply matches nothing.
func ParseCriteria(values url.Values, locations []string) (Criteria, ViewMode, error) {
	var criteria Criteria
	validator := &validate.Validator{}

	if raw := selection(values.Get(FieldCategory)); raw != "" {
		category, ok := lookup(raw, Categories)
		validator.Custom(FieldCategory, !ok, "Unknown category")
		criteria.Category = category
	}

	if raw := selection(values.Get(FieldLocation)); raw != "" {
		if location, ok := lookup(raw, locations); ok {
			criteria.Location = location
		} else {
			criteria.Location = raw
		}
	}

	if raw := selection(values.Get(FieldPriceRange)); raw != "" {
		bucket, ok := lookup(raw, PriceBuckets)
		validator.Custom(FieldPriceRange, !ok, "Unknown price range")
		criteria.PriceRange = bucket
	}

	if raw := selection(values.Get(FieldAvailability)); raw != "" {
		availability, ok := lookup(raw, Availabilities)
		validator.Custom(FieldAvailability, !ok, "Must be one of: available, busy, unavailable")
		criteria.Availability = availability
	}

	criteria.VerifiedOnly = convert.ToBool(values.Get(FieldVerified))

	view := ViewGrid
	if raw := strings.ToLower(strings.TrimSpace(values.Get(FieldView))); raw != "" {
		view = ViewMode(raw)
		validator.OneOf(FieldView, raw, string(ViewGrid), string(ViewList))
	}

	if err := validator.Err(); err != nil {
		return Criteria{}, ViewGrid, err
	}
	return criteria, view, nil
}

// selection normalizes a select-widget value, mapping the "all"/"any" sentinels to unset.
func selection(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") || strings.EqualFold(raw, "any") {
		return ""
	}
	return raw
}

// lookup resolves raw against the known options by exact value, then by slug.
func lookup[T ~string](raw string, options []T) (T, bool) {
	for _, option := range options {
		if string(option) == raw {
			return option, true
		}
	}
	for _, option := range options {
		if slug.Equal(string(option), raw) {
			return option, true
		}
	}
	var zero T
	return zero, false
}
