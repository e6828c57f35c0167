// Package config centralises configuration parsing for the directory service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration for the API server and the audit consumer.
type Config struct {
	HTTPAddress       string
	StaticDir         string
	PostgresURL       string   // empty selects the in-memory directory
	KafkaBrokers      []string // empty disables roster events
	SchemaRegistryURL string   // empty publishes bare JSON payloads
	RosterTopic       string
	MetricsAddress    string
	ConsumerGroupID   string
	ConsumerTopics    []string
	ShutdownTimeout   time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8000"),
		StaticDir:         getEnv("STATIC_DIR", "./static"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		SchemaRegistryURL: os.Getenv("SCHEMA_REGISTRY_URL"),
		RosterTopic:       getEnv("ROSTER_TOPIC", "roster_events"),
		MetricsAddress:    getEnv("METRICS_ADDRESS", ":9102"),
		ConsumerGroupID:   getEnv("CONSUMER_GROUP_ID", "roster-audit"),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	cfg.KafkaBrokers = splitAndTrim(os.Getenv("KAFKA_BROKERS"))
	cfg.ConsumerTopics = splitAndTrim(getEnv("CONSUMER_TOPICS", cfg.RosterTopic))
	return cfg
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
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
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
