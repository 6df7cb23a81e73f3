package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port               int
	LogLevel           string
	CORSAllowedOrigins []string

	// Simulated latency
	DonationDelay time.Duration
	AuthDelay     time.Duration

	// Lifetimes
	ViewTTL    time.Duration
	SessionTTL time.Duration

	// Ledger
	LedgerCapacity int

	// Payment gateway resilience
	GatewayMaxRetries     int
	GatewayInitialBackoff time.Duration

	// Observability
	OTLPEndpoint   string
	TracingEnabled bool

	// JWT / Auth
	JWTSecret string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:               getEnvInt("PORT", 8080),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),

		DonationDelay: getEnvDuration("DONATION_DELAY", 1500*time.Millisecond),
		AuthDelay:     getEnvDuration("AUTH_DELAY", 800*time.Millisecond),

		ViewTTL:    getEnvDuration("VIEW_TTL", 30*time.Minute),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),

		LedgerCapacity: getEnvInt("LEDGER_CAPACITY", 10),

		GatewayMaxRetries:     getEnvInt("GATEWAY_MAX_RETRIES", 2),
		GatewayInitialBackoff: getEnvDuration("GATEWAY_INITIAL_BACKOFF", 100*time.Millisecond),

		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),

		JWTSecret: getEnv("JWT_SECRET", "donor-bfa-default-dev-secret-change-me"),
	}
}

// TracerEndpoint returns the OTLP endpoint, or "" when tracing is off.
func (c *Config) TracerEndpoint() string {
	if !c.TracingEnabled {
		return ""
	}
	return c.OTLPEndpoint
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma-separated value, dropping empty items.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
