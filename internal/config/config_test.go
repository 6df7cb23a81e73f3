package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DonationDelay != 1500*time.Millisecond {
		t.Errorf("expected 1.5s donation delay, got %v", cfg.DonationDelay)
	}
	if cfg.AuthDelay != 800*time.Millisecond {
		t.Errorf("expected 800ms auth delay, got %v", cfg.AuthDelay)
	}
	if cfg.LedgerCapacity != 10 {
		t.Errorf("expected ledger capacity 10, got %d", cfg.LedgerCapacity)
	}
	if cfg.TracerEndpoint() != "" {
		t.Errorf("expected tracing off by default, got %q", cfg.TracerEndpoint())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DONATION_DELAY", "10ms")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := config.Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.DonationDelay != 10*time.Millisecond {
		t.Errorf("expected 10ms, got %v", cfg.DonationDelay)
	}
	if cfg.TracerEndpoint() != "otel:4317" {
		t.Errorf("expected otel:4317, got %q", cfg.TracerEndpoint())
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("AUTH_DELAY", "soon")

	cfg := config.Load()

	if cfg.Port != 8080 || cfg.AuthDelay != 800*time.Millisecond {
		t.Errorf("expected defaults, got port %d delay %v", cfg.Port, cfg.AuthDelay)
	}
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DONOR_TEST_A=file\nDONOR_TEST_B=file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("DONOR_TEST_A", "env")
	t.Cleanup(func() { os.Unsetenv("DONOR_TEST_B") })

	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := os.Getenv("DONOR_TEST_A"); got != "env" {
		t.Errorf("expected env to win, got %q", got)
	}
	if got := os.Getenv("DONOR_TEST_B"); got != "file" {
		t.Errorf("expected value from file, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
