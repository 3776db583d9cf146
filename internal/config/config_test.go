package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "KAFKA_BROKERS", "SUMMARY_TOPIC", "PUBLISH_TIMEOUT", "REPORT_LOCALE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Empty(t, cfg.KafkaBrokers)
	require.False(t, cfg.PublishingEnabled())
	require.Equal(t, "workout_summaries", cfg.SummaryTopic)
	require.Equal(t, 5*time.Second, cfg.PublishTimeout)
	require.Equal(t, "en", cfg.ReportLocale)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("PUBLISH_TIMEOUT", "750ms")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	t.Setenv("REPORT_LOCALE", "ru")

	cfg := Load()

	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.True(t, cfg.PublishingEnabled())
	require.Equal(t, 750*time.Millisecond, cfg.PublishTimeout)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "ru", cfg.ReportLocale)
}
