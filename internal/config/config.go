/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StoreBackend selects the schedule-record catalog backend.
type StoreBackend string

const (
	StoreDynamoDB StoreBackend = "dynamodb"
	StorePostgres StoreBackend = "postgres"
	StoreMySQL    StoreBackend = "mysql"
	StoreSQLite   StoreBackend = "sqlite"
)

// Config covers process-level configuration read from environment
// variables. Everything here is resolved once at startup, never per
// evaluation.
type Config struct {
	Environment string
	HTTPBind    string
	HTTPPort    int
	MetricsBind string

	// Record store selection
	StoreBackend StoreBackend
	DBDSN        string // postgres/mysql/sqlite DSN

	// DynamoDB store
	AWSRegion          string
	AWSEndpoint        string // DynamoDB Local / LocalStack override
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	ScheduleTable      string

	// Evaluation
	Timezone              string // IANA zone of the contact center's calendar
	DefaultScope          string // Scope used when the caller supplies none
	EarlyOpenMarginMin    int    // Minutes before opening that raise the early signal
	RequestTimeoutSeconds int

	// Tracing configuration
	TracingEnabled    bool
	OTLPEndpoint      string
	TracingSampleRate float64

	LegacyEnvWarnings []string
}

// Load reads environment variables, applies defaults, and validates the
// result.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("OPENHOURS_ENV", "development"),
		HTTPBind:    getEnv("OPENHOURS_HTTP_BIND", "0.0.0.0"),
		HTTPPort:    getEnvInt("OPENHOURS_HTTP_PORT", 8080),
		MetricsBind: getEnv("OPENHOURS_METRICS_BIND", "127.0.0.1:9000"),

		StoreBackend: StoreBackend(getEnv("OPENHOURS_STORE_BACKEND", string(StoreDynamoDB))),
		DBDSN:        getEnv("OPENHOURS_DB_DSN", ""),

		AWSRegion:          getEnvAny([]string{"OPENHOURS_AWS_REGION", "AWS_REGION", "REGION"}, "us-east-1"),
		AWSEndpoint:        getEnv("OPENHOURS_AWS_ENDPOINT", ""),
		AWSAccessKeyID:     getEnvAny([]string{"OPENHOURS_AWS_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"}, ""),
		AWSSecretAccessKey: getEnvAny([]string{"OPENHOURS_AWS_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"}, ""),
		ScheduleTable:      getEnvAny([]string{"OPENHOURS_SCHEDULE_TABLE", "OFFICEHOURSTABLE"}, ""),

		Timezone:              getEnvAny([]string{"OPENHOURS_TIMEZONE", "TZ"}, "America/New_York"),
		DefaultScope:          getEnv("OPENHOURS_DEFAULT_SCOPE", "Main"),
		EarlyOpenMarginMin:    getEnvInt("OPENHOURS_EARLY_OPEN_MARGIN_MINUTES", 30),
		RequestTimeoutSeconds: getEnvInt("OPENHOURS_REQUEST_TIMEOUT_SECONDS", 15),

		TracingEnabled:    getEnvBool("OPENHOURS_TRACING_ENABLED", false),
		OTLPEndpoint:      getEnv("OPENHOURS_OTLP_ENDPOINT", "localhost:4317"),
		TracingSampleRate: getEnvFloat("OPENHOURS_TRACING_SAMPLE_RATE", 1.0),
	}

	switch cfg.StoreBackend {
	case StoreDynamoDB:
		if cfg.ScheduleTable == "" {
			return nil, fmt.Errorf("OPENHOURS_SCHEDULE_TABLE must be provided for the dynamodb backend")
		}
	case StorePostgres, StoreMySQL, StoreSQLite:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("OPENHOURS_DB_DSN must be provided for the %s backend", cfg.StoreBackend)
		}
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	if cfg.EarlyOpenMarginMin < 0 {
		return nil, fmt.Errorf("early open margin must not be negative")
	}

	cfg.LegacyEnvWarnings = detectLegacyEnvWarnings()

	return cfg, nil
}

// EarlyOpenMargin returns the pre-opening margin as a duration.
func (c *Config) EarlyOpenMargin() time.Duration {
	return time.Duration(c.EarlyOpenMarginMin) * time.Minute
}

// Location resolves the configured time zone. Load already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// detectLegacyEnvWarnings flags env keys from earlier deployments so
// operators migrate to the prefixed names.
func detectLegacyEnvWarnings() []string {
	legacy := map[string]string{
		"REGION":           "use OPENHOURS_AWS_REGION",
		"OFFICEHOURSTABLE": "use OPENHOURS_SCHEDULE_TABLE",
	}

	warnings := make([]string, 0, len(legacy))
	for key, recommendation := range legacy {
		if os.Getenv(key) != "" {
			warnings = append(warnings, fmt.Sprintf("legacy env key %s is set; %s", key, recommendation))
		}
	}
	return warnings
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "true" || v == "1" || v == "yes" {
			return true
		}
		if v == "false" || v == "0" || v == "no" {
			return false
		}
	}
	return def
}

// getEnvAny returns the first non-empty environment variable value from
// keys, or def if none is set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}
