package onboarding

import (
	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/platform/validate"
	"github.com/UjjwalTomar0808/artistly/pkg/slice"
)

// Step is one page of the onboarding wizard.
type Step struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Fields []string `json:"fields"`
}

// Steps lists the wizard in order. Every application field belongs to exactly one step.
var Steps = []Step{
	{Number: 1, Title: "Personal Info", Fields: []string{FieldName, FieldEmail, FieldPhone, FieldLocation, FieldBio}},
	{Number: 2, Title: "Professional Details", Fields: []string{FieldCategories, FieldLanguages, FieldExperience, FieldWebsite, FieldSpecialties}},
	{Number: 3, Title: "Pricing & Availability", Fields: []string{FieldFeeRange, FieldAvailability}},
	{Number: 4, Title: "Additional Info", Fields: []string{FieldProfileImage}},
}

const (
	minNameLen        = 2
	minPhoneLen       = 10
	minLocationLen    = 2
	minBioLen         = 50
	maxBioLen         = 500
	minSpecialtiesLen = 10
)

type rule func(validator *validate.Validator, application Application)

var rules = map[string]rule{
	FieldName: func(validator *validate.Validator, application Application) {
		validator.MinLen(FieldName, application.Name, minNameLen)
	},
	FieldEmail: func(validator *validate.Validator, application Application) {
		validator.Email(FieldEmail, application.Email)
	},
	FieldPhone: func(validator *validate.Validator, application Application) {
		validator.MinLen(FieldPhone, application.Phone, minPhoneLen)
	},
	FieldLocation: func(validator *validate.Validator, application Application) {
		validator.MinLen(FieldLocation, application.Location, minLocationLen)
	},
	FieldBio: func(validator *validate.Validator, application Application) {
		validator.MinLen(FieldBio, application.Bio, minBioLen).MaxLen(FieldBio, application.Bio, maxBioLen)
	},
	FieldCategories: func(validator *validate.Validator, application Application) {
		allowed := slice.Map(catalog.Categories, func(category catalog.Category) string { return string(category) })
		validator.MinItems(FieldCategories, application.Categories, 1).
			EachOneOf(FieldCategories, application.Categories, allowed...)
	},
	FieldLanguages: func(validator *validate.Validator, application Application) {
		validator.MinItems(FieldLanguages, application.Languages, 1).
			EachOneOf(FieldLanguages, application.Languages, Languages...)
	},
	FieldExperience: func(validator *validate.Validator, application Application) {
		validator.OneOf(FieldExperience, application.Experience, optionValues(ExperienceLevels)...)
	},
	FieldWebsite: func(validator *validate.Validator, application Application) {
		if application.Website != "" {
			validator.URL(FieldWebsite, application.Website)
		}
	},
	FieldSpecialties: func(validator *validate.Validator, application Application) {
		validator.MinLen(FieldSpecialties, application.Specialties, minSpecialtiesLen)
	},
	FieldFeeRange: func(validator *validate.Validator, application Application) {
		validator.OneOf(FieldFeeRange, application.FeeRange, FeeRanges...)
	},
	FieldAvailability: func(validator *validate.Validator, application Application) {
		validator.OneOf(FieldAvailability, application.Availability, optionValues(AvailabilityOptions)...)
	},
	// The profile image is optional and unchecked.
	FieldProfileImage: func(*validate.Validator, Application) {},
}

// StepByNumber returns the wizard step with the given number.
func StepByNumber(number int) (Step, bool) {
	index := slice.Find(Steps, func(step Step) bool { return step.Number == number })
	if index < 0 {
		return Step{}, false
	}
	return Steps[index], true
}

// Validate checks the fields of one step, or of every step when given none.
func Validate(application Application, steps ...Step) error {
	if len(steps) == 0 {
		steps = Steps
	}

	validator := &validate.Validator{}
	for _, step := range steps {
		for _, field := range step.Fields {
			rules[field](validator, application)
		}
	}
	return validator.Err()
}

func optionValues(options []Option) []string {
	return slice.Map(options, func(option Option) string { return option.Value })
}
