// Package config centralises configuration parsing for the workout tracker.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the tracker binaries.
type Config struct {
	HTTPAddress     string
	MetricsAddress  string
	KafkaBrokers    []string // empty disables summary publishing
	SummaryTopic    string
	PublishTimeout  time.Duration
	JWTSecret       string
	JWTIssuer       string
	ReportLocale    string
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:  getEnv("METRICS_ADDRESS", ":9190"),
		KafkaBrokers:    splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		SummaryTopic:    getEnv("SUMMARY_TOPIC", "workout_summaries"),
		PublishTimeout:  getDurationEnv("PUBLISH_TIMEOUT", 5*time.Second),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:       getEnv("JWT_ISSUER", "i5e.identity"),
		ReportLocale:    getEnv("REPORT_LOCALE", "en"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// PublishingEnabled reports whether brokers were configured.
func (c Config) PublishingEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
