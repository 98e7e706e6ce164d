package onboarding

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/UjjwalTomar0808/artistly/internal/catalog"
	"github.com/UjjwalTomar0808/artistly/internal/platform/apperr"
	"github.com/UjjwalTomar0808/artistly/internal/platform/metrics"
	"github.com/UjjwalTomar0808/artistly/pkg/uuid"
)

const acknowledgmentMessage = "Thank you for joining Artistly. We'll review your application and get back to you within 2-3 business days."

// StepResult reports a passed wizard step and where to go next.
type StepResult struct {
	Step  int  `json:"step"`
	Valid bool `json:"valid"`
	Next  *int `json:"next"`
}

type Service struct {
	delay  time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates the onboarding service. delay simulates the latency of
// handing the application to the review team.
func NewService(delay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		delay:  delay,
		logger: logger,
		now:    time.Now,
	}
}

func (service *Service) Options() Options {
	return Options{
		Categories:   slices.Clone(catalog.Categories),
		Languages:    slices.Clone(Languages),
		FeeRanges:    slices.Clone(FeeRanges),
		Experience:   slices.Clone(ExperienceLevels),
		Availability: slices.Clone(AvailabilityOptions),
	}
}

func (service *Service) Steps() []Step {
	return slices.Clone(Steps)
}

// ValidateStep checks only the fields of one wizard step.
func (service *Service) ValidateStep(number int, application Application) (StepResult, error) {
	step, found := StepByNumber(number)
	if !found {
		return StepResult{}, apperr.NotFound("Step")
	}

	if err := Validate(application, step); err != nil {
		return StepResult{}, err
	}

	result := StepResult{Step: step.Number, Valid: true}
	if next, found := StepByNumber(step.Number + 1); found {
		result.Next = &next.Number
	}
	return result, nil
}

// Submit validates the full application, waits out the simulated hand-off and
// acknowledges it. The wait stops early when ctx is done.
func (service *Service) Submit(ctx context.Context, application Application) (*Acknowledgment, error) {
	if err := Validate(application); err != nil {
		metrics.TrackApplication("invalid")
		return nil, err
	}

	if service.delay > 0 {
		timer := time.NewTimer(service.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			metrics.TrackApplication("cancelled")
			return nil, apperr.ServiceUnavailable("Submission was interrupted. Please try again.").WithCause(ctx.Err())
		}
	}

	ack := &Acknowledgment{
		Reference:  uuid.New(),
		Name:       application.Name,
		Message:    acknowledgmentMessage,
		ReceivedAt: service.now().UTC(),
	}

	metrics.TrackApplication("accepted")
	service.logger.InfoContext(ctx, "onboarding_application_received",
		slog.String("reference", ack.Reference),
		slog.Any("categories", application.Categories),
		slog.String("fee_range", application.FeeRange),
	)

	return ack, nil
}
