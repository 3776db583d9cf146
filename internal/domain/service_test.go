package domain

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummarizePublishesSummary(t *testing.T) {
	now := time.Date(2026, time.October, 19, 7, 30, 0, 0, time.UTC)
	publisher := &stubPublisher{}
	service := NewService(publisher, WithClock(func() time.Time { return now }), WithLogger(log.New(testWriter{t}, "", 0)))

	summary, err := service.Summarize(context.Background(), SummarizeInput{
		TenantID:    "tenant-1",
		UserID:      "user-1",
		WorkoutType: WorkoutSwimming,
		Data:        []float64{720, 1, 80, 25, 40},
		Locale:      LocaleEN,
	})
	require.NoError(t, err)

	require.NotEmpty(t, summary.ID)
	require.Equal(t, now, summary.CreatedAt)
	require.Equal(t, "Swimming", summary.Info.TrainingType)
	require.Equal(t, "Activity type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.", summary.Message)

	require.Equal(t, 1, publisher.calls)
	require.Equal(t, summary.ID, publisher.last.ID)
	require.Equal(t, "tenant-1", publisher.last.TenantID)
}

func TestSummarizeUsesRequestedLocale(t *testing.T) {
	service := NewService(nil)

	summary, err := service.Summarize(context.Background(), SummarizeInput{
		WorkoutType: WorkoutRunning,
		Data:        []float64{15000, 1, 75},
		Locale:      LocaleRU,
	})
	require.NoError(t, err)
	require.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.", summary.Message)
}

func TestSummarizeIgnoresPublishFailure(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("broker down")}
	service := NewService(publisher, WithLogger(log.New(testWriter{t}, "", 0)))

	summary, err := service.Summarize(context.Background(), SummarizeInput{
		WorkoutType: WorkoutWalking,
		Data:        []float64{9000, 1, 75, 180},
	})
	require.NoError(t, err)
	require.NotNil(t, summary)
	require.Equal(t, 1, publisher.calls)
}

func TestSummarizeRejectsInvalidPackages(t *testing.T) {
	publisher := &stubPublisher{}
	service := NewService(publisher)

	_, err := service.Summarize(context.Background(), SummarizeInput{WorkoutType: "XYZ", Data: []float64{1, 1, 1}})
	require.ErrorIs(t, err, ErrUnknownWorkoutType)

	_, err = service.Summarize(context.Background(), SummarizeInput{WorkoutType: WorkoutRunning, Data: []float64{15000, 0, 75}})
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = service.Summarize(context.Background(), SummarizeInput{WorkoutType: WorkoutRunning, Data: []float64{15000, 1e-320, 75}})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = service.Summarize(context.Background(), SummarizeInput{WorkoutType: WorkoutWalking, Data: []float64{9000, 1}})
	require.ErrorIs(t, err, ErrArgument)

	require.Zero(t, publisher.calls)
}

func TestFailureReason(t *testing.T) {
	require.Equal(t, "unknown_workout_type", failureReason(ErrUnknownWorkoutType))
	require.Equal(t, "invalid_argument", failureReason(ErrArgument))
	require.Equal(t, "division_by_zero", failureReason(ErrDivisionByZero))
	require.Equal(t, "out_of_range", failureReason(ErrOutOfRange))
	require.Equal(t, "internal", failureReason(errors.New("boom")))
}

type stubPublisher struct {
	calls int
	err   error
	last  Summary
}

func (p *stubPublisher) PublishSummary(_ context.Context, summary Summary) error {
	p.calls++
	p.last = summary
	return p.err
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
