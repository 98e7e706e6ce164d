package catalog

// SeedArtists returns the catalog the marketplace launches with.
//
// A fresh slice is built on every call so no caller can alter another's copy.
func SeedArtists() []Artist {
	return []Artist{
		{
			ID:           1,
			Name:         "Sarah Johnson",
			Category:     CategoryMusicians,
			Location:     "New York, NY",
			PriceRange:   "$500-1000",
			Rating:       4.9,
			Reviews:      45,
			Bio:          "Professional jazz vocalist with 10+ years of experience performing at weddings, corporate events, and private parties.",
			Specialties:  []string{"Jazz", "Pop", "Soul", "Wedding Songs"},
			Languages:    []string{"English", "Spanish"},
			Availability: AvailabilityAvailable,
			Verified:     true,
		},
		{
			ID:           2,
			Name:         "Dance Fusion Crew",
			Category:     CategoryDancers,
			Location:     "Los Angeles, CA",
			PriceRange:   "$800-1500",
			Rating:       4.8,
			Reviews:      32,
			Bio:          "Award-winning dance crew specializing in contemporary and hip-hop performances for corporate events and entertainment shows.",
			Specialties:  []string{"Hip Hop", "Contemporary", "Street Dance", "Choreography"},
			Languages:    []string{"English"},
			Availability: AvailabilityAvailable,
			Verified:     true,
		},
		{
			ID:           3,
			Name:         "DJ Mike Stevens",
			Category:     CategoryDJs,
			Location:     "Miami, FL",
			PriceRange:   "$400-800",
			Rating:       4.9,
			Reviews:      67,
			Bio:          "Professional DJ with expertise in electronic music, weddings, and corporate events. State-of-the-art equipment included.",
			Specialties:  []string{"Electronic", "House", "Wedding Music", "Corporate Events"},
			Languages:    []string{"English", "Portuguese"},
			Availability: AvailabilityAvailable,
			Verified:     true,
		},
		{
			ID:           4,
			Name:         "Dr. Amanda Chen",
			Category:     CategorySpeakers,
			Location:     "San Francisco, CA",
			PriceRange:   "$1000-2500",
			Rating:       4.9,
			Reviews:      28,
			Bio:          "Motivational speaker and business consultant with expertise in leadership, innovation, and personal development.",
			Specialties:  []string{"Leadership", "Innovation", "Personal Development", "Corporate Training"},
			Languages:    []string{"English", "Mandarin"},
			Availability: AvailabilityAvailable,
			Verified:     true,
		},
		{
			ID:           5,
			Name:         "The Jazz Quartet",
			Category:     CategoryMusicians,
			Location:     "Chicago, IL",
			PriceRange:   "$1200-2000",
			Rating:       4.7,
			Reviews:      23,
			Bio:          "Professional jazz ensemble perfect for upscale events, cocktail parties, and intimate gatherings.",
			Specialties:  []string{"Jazz", "Swing", "Blues", "Cocktail Music"},
			Languages:    []string{"English"},
			Availability: AvailabilityBusy,
			Verified:     true,
		},
		{
			ID:           6,
			Name:         "Maria Rodriguez",
			Category:     CategoryDancers,
			Location:     "Austin, TX",
			PriceRange:   "$300-600",
			Rating:       4.8,
			Reviews:      19,
			Bio:          "Flamenco dancer and instructor bringing authentic Spanish culture to your events with passionate performances.",
			Specialties:  []string{"Flamenco", "Spanish Dance", "Cultural Performances"},
			Languages:    []string{"English", "Spanish"},
			Availability: AvailabilityAvailable,
			Verified:     true,
		},
		{
			ID:           7,
			Name:         "DJ Luna",
			Category:     CategoryDJs,
			Location:     "Las Vegas, NV",
			PriceRange:   "$600-1200",
			Rating:       4.6,
			Reviews:      41,
			Bio:          "High-energy DJ specializing in EDM, pop, and party music. Perfect for nightclub events and festivals.",
			Specialties:  []string{"EDM", "Pop", "Party Music", "Club Events"},
			Languages:    []string{"English"},
			Availability: AvailabilityAvailable,
			Verified:     false,
		},
		{
			ID:           8,
			Name:         "Robert Thompson",
			Category:     CategorySpeakers,
			Location:     "Boston, MA",
			PriceRange:   "$800-1500",
			Rating:       4.9,
			Reviews:      35,
			Bio:          "Technology keynote speaker and startup mentor with 15+ years in Silicon Valley. Inspiring talks on innovation and entrepreneurship.",
			Specialties:  []string{"Technology", "Entrepreneurship", "Innovation", "Startups"},
			Languages:    []string{"English"},
			Availability: AvailabilityAvailable,
			Verified:     true,
		},
	}
}

// SeedLocations returns the cities offered by the location filter.
func SeedLocations() []string {
	return []string{
		"New York, NY",
		"Los Angeles, CA",
		"Miami, FL",
		"San Francisco, CA",
		"Chicago, IL",
		"Austin, TX",
		"Las Vegas, NV",
		"Boston, MA",
	}
}

var categoryDescriptions = map[Category]string{
	CategoryMusicians: "Solo artists, bands, and orchestras",
	CategoryDancers:   "Contemporary, classical, and cultural dancers",
	CategorySpeakers:  "Motivational and keynote speakers",
	CategoryDJs:       "Professional DJs for all occasions",
}
