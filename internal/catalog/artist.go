package catalog

// Category is the closed set of performer categories offered on the marketplace.
type Category string

const (
	CategoryMusicians Category = "Musicians"
	CategoryDancers   Category = "Dancers"
	CategorySpeakers  Category = "Speakers"
	CategoryDJs       Category = "DJs"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryMusicians, CategoryDancers, CategorySpeakers, CategoryDJs}

// Availability is the booking state an artist advertises.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// Availabilities lists every availability state in display order.
var Availabilities = []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable}

// Artist is a performer listed in the catalog. Seed records are never mutated.
type Artist struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Location     string       `json:"location"`
	PriceRange   string       `json:"price_range"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Bio          string       `json:"bio"`
	Specialties  []string     `json:"specialties"`
	Languages    []string     `json:"languages"`
	Availability Availability `json:"availability"`
	Verified     bool         `json:"verified"`
}

// CategoryCard summarizes one category for the home page.
type CategoryCard struct {
	Name        Category `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ArtistCount int      `json:"artist_count"`
}

// FilterOptions lists the selectable values of every listing filter.
type FilterOptions struct {
	Categories     []Category     `json:"categories"`
	Locations      []string       `json:"locations"`
	PriceRanges    []PriceBucket  `json:"price_ranges"`
	Availabilities []Availability `json:"availabilities"`
}

// QuoteRequest is a visitor's request for a booking quote from one artist.
type QuoteRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventDate string `json:"event_date,omitempty"`
	Message   string `json:"message,omitempty"`
}

// QuoteAcknowledgment confirms a quote request. Nothing is stored.
type QuoteAcknowledgment struct {
	Reference  string `json:"reference"`
	ArtistID   int    `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	Message    string `json:"message"`
}

const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldEventDate = "event_date"
	FieldMessage   = "message"

	FieldCategory     = "category"
	FieldLocation     = "location"
	FieldPriceRange   = "price_range"
	FieldAvailability = "availability"
	FieldVerified     = "verified"
	FieldView         = "view"
)
