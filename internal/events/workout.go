// Package events defines the payloads the tracker emits to Kafka.
package events

import "time"

// EventWorkoutSummarized is the event_type header value for WorkoutSummarized.
const EventWorkoutSummarized = "workout.summarized"

// WorkoutSummarized is emitted after a sensor package has been turned into a summary.
type WorkoutSummarized struct {
	SummaryID    string    `json:"summary_id"`
	TenantID     string    `json:"tenant_id"`
	UserID       string    `json:"user_id"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	DurationH    float64   `json:"duration_h"`
	DistanceKm   float64   `json:"distance_km"`
	SpeedKmh     float64   `json:"speed_kmh"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	Locale       string    `json:"locale"`
	OccurredAt   time.Time `json:"occurred_at"`
}
