package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/ftracker/internal/observability"
)

// Publisher delivers computed summaries to downstream consumers.
type Publisher interface {
	PublishSummary(ctx context.Context, summary Summary) error
}

type noopPublisher struct{}

func (noopPublisher) PublishSummary(context.Context, Summary) error { return nil }

// Summary is a computed workout summary tagged for delivery.
type Summary struct {
	ID          string
	TenantID    string
	UserID      string
	WorkoutType string
	Info        InfoMessage
	Message     string
	Locale      Locale
	CreatedAt   time.Time
}

// SummarizeInput captures a sensor package submitted by a caller.
type SummarizeInput struct {
	TenantID    string
	UserID      string
	WorkoutType string
	Data        []float64
	Locale      Locale
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report publish failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used to stamp summaries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates summary computation and delivery.
type Service struct {
	publisher Publisher
	logger    *log.Logger
	now       func() time.Time
}

// NewService constructs a Service. A nil publisher disables delivery.
func NewService(publisher Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	s := &Service{
		publisher: publisher,
		logger:    log.New(log.Writer(), "[summary] ", log.LstdFlags|log.Lshortfile),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize computes the summary for a sensor package and hands it to the publisher.
// Delivery failures are logged and counted; they never fail the computation.
func (s *Service) Summarize(ctx context.Context, input SummarizeInput) (*Summary, error) {
	training, err := ReadPackage(input.WorkoutType, input.Data)
	if err != nil {
		observability.RecordSummaryFailure(failureReason(err))
		return nil, err
	}

	info, err := ShowTrainingInfo(training)
	if err != nil {
		observability.RecordSummaryFailure(failureReason(err))
		return nil, err
	}

	summary := Summary{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		UserID:      input.UserID,
		WorkoutType: input.WorkoutType,
		Info:        info,
		Message:     info.MessageIn(input.Locale),
		Locale:      input.Locale,
		CreatedAt:   s.now(),
	}
	observability.RecordSummary(summary.WorkoutType, summary.CreatedAt)

	if err := s.publisher.PublishSummary(ctx, summary); err != nil {
		s.logger.Printf("publish failed (summary=%s, tenant=%s): %v", summary.ID, summary.TenantID, err)
	}
	return &summary, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownWorkoutType):
		return "unknown_workout_type"
	case errors.Is(err, ErrArgument):
		return "invalid_argument"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	default:
		return "internal"
	}
}
