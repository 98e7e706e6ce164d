package onboarding

import (
	"time"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
)

// Application is a prospective artist's onboarding form. It is validated and
// acknowledged, never stored.
type Application struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	Categories   []string `json:"categories"`
	Languages    []string `json:"languages"`
	Experience   string   `json:"experience"`
	Website      string   `json:"website,omitempty"`
	Specialties  string   `json:"specialties"`
	FeeRange     string   `json:"fee_range"`
	Availability string   `json:"availability"`
	ProfileImage string   `json:"profile_image,omitempty"`
}

// Acknowledgment confirms receipt of an application.
type Acknowledgment struct {
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options lists every selectable value on the form.
type Options struct {
	Categories   []catalog.Category `json:"categories"`
	Languages    []string           `json:"languages"`
	FeeRanges    []string           `json:"fee_ranges"`
	Experience   []Option           `json:"experience"`
	Availability []Option           `json:"availability"`
}

const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldLocation     = "location"
	FieldBio          = "bio"
	FieldCategories   = "categories"
	FieldLanguages    = "languages"
	FieldExperience   = "experience"
	FieldWebsite      = "website"
	FieldSpecialties  = "specialties"
	FieldFeeRange     = "fee_range"
	FieldAvailability = "availability"
	FieldProfileImage = "profile_image"
	FieldStep         = "step"
)

// Languages an artist can perform in.
var Languages = []string{
	"English", "Spanish", "French", "German", "Italian",
	"Portuguese", "Mandarin", "Japanese", "Korean", "Arabic",
}

// FeeRanges are broader than the listing's price buckets: they extend past $2000.
var FeeRanges = []string{"$0-500", "$500-1000", "$1000-1500", "$1500-2000", "$2000-3000", "$3000+"}

var ExperienceLevels = []Option{
	{Value: "beginner", Label: "Beginner (0-2 years)"},
	{Value: "intermediate", Label: "Intermediate (2-5 years)"},
	{Value: "experienced", Label: "Experienced (5-10 years)"},
	{Value: "expert", Label: "Expert (10+ years)"},
}

var AvailabilityOptions = []Option{
	{Value: string(catalog.AvailabilityAvailable), Label: "Available - Actively taking bookings"},
	{Value: string(catalog.AvailabilityBusy), Label: "Busy - Limited availability"},
	{Value: string(catalog.AvailabilityUnavailable), Label: "Unavailable - Not taking new bookings"},
}
