package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the loader at an empty temp dir so the developer's own
// .env or config files never leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TICKETD_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("TICKETD_CONFIG_PATH", "")
	for _, k := range []string{"LOG_MODE", "TICKETD_HTTP_ADDR", "TICKETD_BACKEND", "TICKETD_MAILBOX_CAPACITY", "TICKETD_REPLY_TIMEOUT", "TICKETD_CORS_ORIGINS", "METRICS_ENABLED", "OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE", "OTEL_SAMPLER_RATIO"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("addr=%q", cfg.HTTP.Addr)
	}
	if cfg.Store.Backend != BackendShared || cfg.Store.MailboxCapacity != 64 {
		t.Fatalf("store=%+v", cfg.Store)
	}
	if cfg.Tracing.Enabled {
		t.Fatalf("tracing should default off")
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("metrics should default on")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
env: production
http:
  addr: ":9090"
  shutdown_timeout: 3s
store:
  backend: Actor
  mailbox_capacity: 8
  reply_timeout: 250ms
`)
	t.Setenv("TICKETD_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" || cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.HTTP.ShutdownTimeout.Duration != 3*time.Second {
		t.Fatalf("shutdown_timeout=%v", cfg.HTTP.ShutdownTimeout.Duration)
	}
	// Unset keys keep their defaults.
	if cfg.HTTP.IdleTimeout.Duration != 2*time.Minute {
		t.Fatalf("idle_timeout=%v", cfg.HTTP.IdleTimeout.Duration)
	}
	if cfg.Store.Backend != BackendActor || cfg.Store.MailboxCapacity != 8 || cfg.Store.ReplyTimeout.Duration != 250*time.Millisecond {
		t.Fatalf("store=%+v", cfg.Store)
	}
}

func TestLoadJSONFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")
	writeFile(t, path, `{"http":{"addr":":7000","read_header_timeout":1000000000},"store":{"backend":"shared"}}`)
	t.Setenv("TICKETD_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":7000" || cfg.HTTP.ReadHeaderTimeout.Duration != time.Second {
		t.Fatalf("http=%+v", cfg.HTTP)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "store:\n  backend: shared\n")
	t.Setenv("TICKETD_CONFIG_PATH", path)
	t.Setenv("TICKETD_BACKEND", "actor")
	t.Setenv("TICKETD_MAILBOX_CAPACITY", "2")
	t.Setenv("TICKETD_CORS_ORIGINS", "http://localhost:3000, http://127.0.0.1:3000,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendActor || cfg.Store.MailboxCapacity != 2 {
		t.Fatalf("store=%+v", cfg.Store)
	}
	if len(cfg.HTTP.CORSOrigins) != 2 {
		t.Fatalf("cors=%v", cfg.HTTP.CORSOrigins)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, "test.env")
	writeFile(t, envPath, "TICKETD_HTTP_ADDR=:6060\n")
	t.Setenv("TICKETD_ENV_FILE", envPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":6060" {
		t.Fatalf("addr=%q", cfg.HTTP.Addr)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"TICKETD_BACKEND":          "redis",
		"TICKETD_MAILBOX_CAPACITY": "-1",
		"TICKETD_REPLY_TIMEOUT":    "soon",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
