// Package config reads process configuration from the environment, with .env
// support for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI commands need to wire the process.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// LogLevel and LogFormat configure the slog handler (text|json).
	LogLevel  string
	LogFormat string

	// Backend selection, checked in order: DatabaseURL, SQLitePath, DataFile,
	// then in-memory.
	DatabaseURL string
	SQLitePath  string
	DataFile    string

	// KafkaBrokers enables the event publisher when non-empty.
	KafkaBrokers []string
	KafkaTopic   string

	// DevSeed logs the seeded account ids on startup.
	DevSeed bool
}

// Load reads a .env file if present, then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function; tests pass a map-backed one.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{Addr: ":8080"}
	if v := strings.TrimSpace(getenv("ADDR")); v != "" {
		cfg.Addr = v
	}
	cfg.LogLevel = strings.TrimSpace(getenv("LOG_LEVEL"))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT")))
	cfg.DatabaseURL = strings.TrimSpace(getenv("DATABASE_URL"))
	cfg.SQLitePath = strings.TrimSpace(getenv("SQLITE_PATH"))
	cfg.DataFile = strings.TrimSpace(getenv("DATA_FILE"))
	if v := strings.TrimSpace(getenv("KAFKA_BROKERS")); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = strings.TrimSpace(getenv("KAFKA_TOPIC"))
	switch strings.ToLower(strings.TrimSpace(getenv("DEV_SEED"))) {
	case "1", "true", "yes":
		cfg.DevSeed = true
	}
	return cfg
}
