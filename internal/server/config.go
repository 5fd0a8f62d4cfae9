package server

import (
	"os"
	"time"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address. Default: ":8080".
	Addr string

	// Mode selects logger/gin behavior: "dev" or "prod".
	Mode string

	// ReadTimeout and WriteTimeout bound each request; callers see
	// ServiceUnavailable rather than a hang when the store stalls.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Mode:            "dev",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if addr := os.Getenv("SKILLTRAIL_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if mode := os.Getenv("SKILLTRAIL_MODE"); mode != "" {
		cfg.Mode = mode
	}
	if d, err := time.ParseDuration(os.Getenv("SKILLTRAIL_READ_TIMEOUT")); err == nil {
		cfg.ReadTimeout = d
	}
	if d, err := time.ParseDuration(os.Getenv("SKILLTRAIL_WRITE_TIMEOUT")); err == nil {
		cfg.WriteTimeout = d
	}
	return cfg
}
