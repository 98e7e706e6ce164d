package catalog

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	"github.com/UjjwalTomar0808/artistly/internal/platform/metrics"
	"github.com/UjjwalTomar0808/artistly/internal/platform/validate"
	"github.com/UjjwalTomar0808/artistly/pkg/slice"
	"github.com/UjjwalTomar0808/artistly/pkg/slug"
	"github.com/UjjwalTomar0808/artistly/pkg/uuid"
)

const (
	// DefaultFeaturedLimit is the number of featured artists on the home page.
	DefaultFeaturedLimit = 4
	maxFeaturedLimit     = 8
	maxQuoteMessage      = 1000
	eventDateLayout      = "2006-01-02"
)

// Listing is one evaluation of the artist listing.
type Listing struct {
	Items            []Artist `json:"items"`
	Count            int      `json:"count"`
	Total            int      `json:"total"`
	View             ViewMode `json:"view"`
	Criteria         Criteria `json:"criteria"`
	HasActiveFilters bool     `json:"has_active_filters"`

	// ClearFilters links to the same listing with every filter unset. It is
	// always present when the result is empty.
	ClearFilters string `json:"clear_filters,omitempty"`
}

// Empty reports whether no artist matched.
func (listing Listing) Empty() bool {
	return listing.Count == 0
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List filters the catalog by criteria.
func (service *Service) List(ctx context.Context, criteria Criteria, view ViewMode) (Listing, error) {
	artists, err := service.repo.ListArtists(ctx)
	if err != nil {
		return Listing{}, apperr.Internal(fmt.Errorf("catalog: list artists: %w", err))
	}

	items := Filter(artists, criteria)
	metrics.TrackListing(len(items))

	return Listing{
		Items:            items,
		Count:            len(items),
		Total:            len(artists),
		View:             view,
		Criteria:         criteria,
		HasActiveFilters: criteria.HasActive(),
	}, nil
}

// ParseCriteria parses listing query parameters against the catalog's locations.
func (service *Service) ParseCriteria(ctx context.Context, values url.Values) (Criteria, ViewMode, error) {
	locations, err := service.repo.ListLocations(ctx)
	if err != nil {
		return Criteria{}, ViewGrid, apperr.Internal(fmt.Errorf("catalog: list locations: %w", err))
	}
	return ParseCriteria(values, locations)
}

func (service *Service) GetArtist(ctx context.Context, id int) (*Artist, error) {
	artists, err := service.repo.ListArtists(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("catalog: list artists: %w", err))
	}

	index := slice.Find(artists, func(artist Artist) bool { return artist.ID == id })
	if index < 0 {
		return nil, apperr.NotFound("Artist")
	}
	return &artists[index], nil
}

// Options lists the selectable values for every listing filter.
func (service *Service) Options(ctx context.Context) (FilterOptions, error) {
	locations, err := service.repo.ListLocations(ctx)
	if err != nil {
		return FilterOptions{}, apperr.Internal(fmt.Errorf("catalog: list locations: %w", err))
	}

	return FilterOptions{
		Categories:     slices.Clone(Categories),
		Locations:      locations,
		PriceRanges:    slices.Clone(PriceBuckets),
		Availabilities: slices.Clone(Availabilities),
	}, nil
}

// CategoryCards summarizes every category with its current artist count.
func (service *Service) CategoryCards(ctx context.Context) ([]CategoryCard, error) {
	artists, err := service.repo.ListArtists(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("catalog: list artists: %w", err))
	}

	return slice.Map(Categories, func(category Category) CategoryCard {
		return CategoryCard{
			Name:        category,
			Slug:        slug.From(string(category)),
			Description: categoryDescriptions[category],
			ArtistCount: slice.Count(artists, func(artist Artist) bool { return artist.Category == category }),
		}
	}), nil
}

// Featured returns up to limit verified artists, best rated first.
// Ties keep catalog order after comparing review counts.
func (service *Service) Featured(ctx context.Context, limit int) ([]Artist, error) {
	if limit < 1 || limit > maxFeaturedLimit {
		limit = DefaultFeaturedLimit
	}

	artists, err := service.repo.ListArtists(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("catalog: list artists: %w", err))
	}

	featured := Filter(artists, Criteria{VerifiedOnly: true})
	slices.SortStableFunc(featured, func(a, b Artist) int {
		if byRating := cmp.Compare(b.Rating, a.Rating); byRating != 0 {
			return byRating
		}
		return cmp.Compare(b.Reviews, a.Reviews)
	})

	return featured[:min(limit, len(featured))], nil
}

// RequestQuote acknowledges a visitor's quote request for an artist.
func (service *Service) RequestQuote(ctx context.Context, artistID int, request QuoteRequest) (*QuoteAcknowledgment, error) {
	artist, err := service.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, request.Name).MinLen(FieldName, request.Name, 2).
		Email(FieldEmail, request.Email).
		MaxLen(FieldMessage, request.Message, maxQuoteMessage).
		Custom(FieldEventDate, request.EventDate != "" && !validDate(request.EventDate), "Must be a date in YYYY-MM-DD format")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	ack := &QuoteAcknowledgment{
		Reference:  uuid.New(),
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		Message:    fmt.Sprintf("Your quote request has been sent to %s. They will respond within 24 hours.", artist.Name),
	}

	metrics.TrackQuote()
	service.logger.InfoContext(ctx, "quote_request_received",
		slog.Int("artist_id", artist.ID),
		slog.String("reference", ack.Reference),
	)

	return ack, nil
}

func validDate(value string) bool {
	_, err := time.Parse(eventDateLayout, value)
	return err == nil
}
