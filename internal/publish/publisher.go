// Package publish delivers computed workout summaries to Kafka.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/ftracker/internal/domain"
	"example.com/ftracker/internal/events"
)

type messageWriter interface {
	Topic() string
	WriteMessages(context.Context, ...kafka.Message) error
}

// NoopPublisher drops summaries; used when no brokers are configured.
type NoopPublisher struct{}

// PublishSummary implements domain.Publisher.
func (NoopPublisher) PublishSummary(context.Context, domain.Summary) error { return nil }

// SummaryPublisher encodes summaries as WorkoutSummarized events and writes them to a topic.
type SummaryPublisher struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
}

// NewSummaryPublisher constructs a SummaryPublisher. A zero timeout relies on the caller's context.
func NewSummaryPublisher(writer messageWriter, timeout time.Duration) *SummaryPublisher {
	return &SummaryPublisher{writer: writer, topic: writer.Topic(), timeout: timeout}
}

// PublishSummary implements domain.Publisher.
func (p *SummaryPublisher) PublishSummary(ctx context.Context, summary domain.Summary) error {
	body, err := json.Marshal(toEvent(summary))
	if err != nil {
		failedCounter.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("encode summary %s: %w", summary.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(partitionKey(summary)),
		Value: body,
		Time:  summary.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.EventWorkoutSummarized)},
			{Key: "tenant_id", Value: []byte(summary.TenantID)},
			{Key: "workout_type", Value: []byte(summary.WorkoutType)},
		},
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		failedCounter.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write to %s: %w", p.topic, err)
	}
	publishedCounter.WithLabelValues(p.topic).Inc()
	return nil
}

func partitionKey(summary domain.Summary) string {
	return fmt.Sprintf("%s:%s", summary.TenantID, summary.UserID)
}

func toEvent(summary domain.Summary) events.WorkoutSummarized {
	return events.WorkoutSummarized{
		SummaryID:    summary.ID,
		TenantID:     summary.TenantID,
		UserID:       summary.UserID,
		WorkoutType:  summary.WorkoutType,
		TrainingType: summary.Info.TrainingType,
		DurationH:    summary.Info.Duration,
		DistanceKm:   summary.Info.Distance,
		SpeedKmh:     summary.Info.Speed,
		Calories:     summary.Info.Calories,
		Message:      summary.Message,
		Locale:       string(summary.Locale),
		OccurredAt:   summary.CreatedAt,
	}
}
