package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	"github.com/UjjwalTomar0808/artistly/internal/platform/metrics"
	"github.com/UjjwalTomar0808/artistly/internal/platform/validate"
	"github.com/UjjwalTomar0808/artistly/pkg/slice"
	"github.com/UjjwalTomar0808/artistly/pkg/slug"
)

// Result is one evaluation of the review table.
type Result struct {
	Items []Submission `json:"items"`
	Count int          `json:"count"`
	Query Query        `json:"query"`
	Stats Stats        `json:"stats"`
}

// Service serves each browsing session its own view of the submissions: the
// seed collection with the session's decisions applied.
type Service struct {
	seed   []Submission
	store  Store
	logger *slog.Logger
}

func NewService(seed []Submission, store Store, logger *slog.Logger) *Service {
	return &Service{
		seed:   slices.Clone(seed),
		store:  store,
		logger: logger,
	}
}

// workspace returns the session's current collection.
func (service *Service) workspace(ctx context.Context, sessionID string) ([]Submission, error) {
	decisions, err := service.store.Decisions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	submissions := slices.Clone(service.seed)
	for index := range submissions {
		if status, decided := decisions[submissions[index].ID]; decided {
			submissions[index].Status = status
		}
	}
	return submissions, nil
}

// List filters the session's submissions. Stats always cover the full collection.
func (service *Service) List(ctx context.Context, sessionID string, query Query) (Result, error) {
	submissions, err := service.workspace(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}

	items := Filter(submissions, query)
	return Result{
		Items: items,
		Count: len(items),
		Query: query,
		Stats: ComputeStats(submissions),
	}, nil
}

func (service *Service) Get(ctx context.Context, sessionID string, id int) (*Submission, error) {
	submissions, err := service.workspace(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	index := slice.Find(submissions, func(submission Submission) bool { return submission.ID == id })
	if index < 0 {
		return nil, apperr.NotFound("Submission")
	}
	return &submissions[index], nil
}

func (service *Service) Stats(ctx context.Context, sessionID string) (Stats, error) {
	submissions, err := service.workspace(ctx, sessionID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(submissions), nil
}

// SetStatus approves or rejects a pending submission in the session's workspace.
func (service *Service) SetStatus(ctx context.Context, sessionID string, id int, status Status) (*Submission, error) {
	if !status.Decided() {
		return nil, validate.FieldErr(FieldStatus, "Must be one of: approved, rejected")
	}

	submissions, err := service.workspace(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := SetStatus(submissions, id, status)
	if errors.Is(err, ErrSubmissionNotFound) {
		return nil, apperr.NotFound("Submission").WithCause(err)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	index := slice.Find(submissions, func(submission Submission) bool { return submission.ID == id })
	if current := submissions[index].Status; current.Decided() {
		return nil, decidedConflict(id, current)
	}

	recorded, err := service.store.Decide(ctx, sessionID, id, status)
	if err != nil {
		return nil, err
	}
	if !recorded {
		// A concurrent request from the same session won the race
		return nil, apperr.Conflict(fmt.Sprintf("Submission %d has already been decided", id))
	}

	metrics.TrackDecision(string(status))
	service.logger.InfoContext(ctx, "submission_status_changed",
		slog.String("session_id", sessionID),
		slog.Int("submission_id", id),
		slog.String("status", string(status)),
	)

	return &updated[index], nil
}

func decidedConflict(id int, current Status) *apperr.AppError {
	return apperr.Conflict(fmt.Sprintf("Submission %d has already been %s", id, current))
}

// ParseQuery reads the review table query from URL parameters.
//
// Empty values and the "all" sentinel leave a field unset. Categories match by
// display name or slug.
func ParseQuery(values url.Values) (Query, error) {
	query := Query{Term: strings.TrimSpace(values.Get(FieldTerm))}
	validator := &validate.Validator{}

	if raw := sentinel(values.Get(FieldStatus)); raw != "" {
		query.Status = Status(strings.ToLower(raw))
		validator.Custom(FieldStatus, !slices.Contains(Statuses, query.Status), "Must be one of: pending, approved, rejected")
	}

	if raw := sentinel(values.Get(FieldCategory)); raw != "" {
		index := slice.Find(catalog.Categories, func(category catalog.Category) bool {
			return string(category) == raw || slug.Equal(string(category), raw)
		})
		validator.Custom(FieldCategory, index < 0, "Unknown category")
		if index >= 0 {
			query.Category = catalog.Categories[index]
		}
	}

	if err := validator.Err(); err != nil {
		return Query{}, err
	}
	return query, nil
}

func sentinel(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return ""
	}
	return raw
}
