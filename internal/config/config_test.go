package config

import (
	"reflect"
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg := FromEnv(envFrom(nil))
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.DatabaseURL != "" || cfg.SQLitePath != "" || cfg.DataFile != "" {
		t.Fatalf("unexpected backend config: %+v", cfg)
	}
	if cfg.KafkaBrokers != nil || cfg.DevSeed {
		t.Fatalf("unexpected extras: %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := FromEnv(envFrom(map[string]string{
		"ADDR":          ":9090",
		"LOG_LEVEL":     "debug",
		"LOG_FORMAT":    "TEXT",
		"SQLITE_PATH":   "/tmp/greenbank.db",
		"KAFKA_BROKERS": "k1:9092, k2:9092 ,",
		"KAFKA_TOPIC":   "tx",
		"DEV_SEED":      "yes",
	}))
	if cfg.Addr != ":9090" || cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SQLitePath != "/tmp/greenbank.db" {
		t.Fatalf("sqlite path = %q", cfg.SQLitePath)
	}
	if !reflect.DeepEqual(cfg.KafkaBrokers, []string{"k1:9092", "k2:9092"}) {
		t.Fatalf("brokers = %+v", cfg.KafkaBrokers)
	}
	if cfg.KafkaTopic != "tx" || !cfg.DevSeed {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
