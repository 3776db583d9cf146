package publish

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "publish",
		Name:      "events_published_total",
		Help:      "Number of summary events written to Kafka, labeled by topic.",
	}, []string{"topic"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "publish",
		Name:      "events_failed_total",
		Help:      "Number of summary events that could not be encoded or written, labeled by topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter)
}
