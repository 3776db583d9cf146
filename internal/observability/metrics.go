package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	summariesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "summary",
		Name:      "computed_total",
		Help:      "Number of workout summaries computed, labeled by workout type tag.",
	}, []string{"workout_type"})

	failuresCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "summary",
		Name:      "failures_total",
		Help:      "Number of sensor packages rejected, labeled by failure reason.",
	}, []string{"reason"})

	lastSummaryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ftracker",
		Subsystem: "summary",
		Name:      "last_summary_timestamp_seconds",
		Help:      "Unix timestamp of the most recent computed summary.",
	})
)

func init() {
	prometheus.MustRegister(summariesCounter, failuresCounter, lastSummaryGauge)
}

// RecordSummary counts a computed summary and moves the watermark gauge.
func RecordSummary(workoutType string, ts time.Time) {
	summariesCounter.WithLabelValues(workoutType).Inc()
	if ts.IsZero() {
		return
	}
	lastSummaryGauge.Set(float64(ts.Unix()))
}

// RecordSummaryFailure counts a rejected package.
func RecordSummaryFailure(reason string) {
	failuresCounter.WithLabelValues(reason).Inc()
}
