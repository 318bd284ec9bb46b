package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the console gateway.
type Config struct {
	Port      int
	Version   string
	Backend   BackendConfig
	Telemetry TelemetryConfig
}

// BackendConfig selects and parameterizes the data backend. Simulate is a
// process-wide switch read once at startup; it is injected into the gateway
// facade at construction so tests can run both backends side by side.
type BackendConfig struct {
	// Simulate routes all gateway calls to the in-process simulated store
	// instead of the network backend.
	Simulate bool
	// BaseURL is the upstream service root, e.g. "http://localhost:9090/api".
	BaseURL string
	// Timeout is the fixed client-wide timeout for every upstream call
	// except plugin operation invocations, which carry their own.
	Timeout time.Duration
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:    envInt("CONSOLE_PORT", 8080),
		Version: envStr("CONSOLE_VERSION", "0.1.0"),
		Backend: BackendConfig{
			Simulate: envBool("CONSOLE_SIMULATE", true),
			BaseURL:  envStr("CONSOLE_BACKEND_URL", "http://localhost:9090/api"),
			Timeout:  envDuration("CONSOLE_BACKEND_TIMEOUT", 15*time.Second),
		},
		Telemetry: TelemetryConfig{
			Enabled:      envBool("OTEL_ENABLED", false),
			OTLPEndpoint: envStr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  envStr("OTEL_SERVICE_NAME", "console-gateway"),
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
