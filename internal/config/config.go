package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// APIKey protects /api/v1 when set. Empty disables authentication.
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`

	RateLimit       int           `validate:"min=1"`
	RateLimitWindow time.Duration `validate:"min=1s"`
	MaxTrackedIPs   int           `validate:"min=1"`

	// MaxBatchSize caps the number of codes in one batch conversion.
	MaxBatchSize int `validate:"min=1,max=10000"`
	// Lenient applies full-width and case folding before conversion when
	// the request does not say otherwise.
	Lenient bool

	ShutdownTimeout time.Duration `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		MaxTrackedIPs:  getEnvAsInt(EnvMaxTrackedIPs, DefaultMaxTrackedIPs),
		Lenient:        getEnvAsBool(EnvLenient, false),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort))); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	if cfg.RateLimit, err = strconv.Atoi(getEnv(EnvRateLimit, strconv.Itoa(DefaultRateLimit))); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvRateLimit, err)
	}
	if cfg.MaxBatchSize, err = strconv.Atoi(getEnv(EnvMaxBatchSize, strconv.Itoa(DefaultMaxBatchSize))); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvMaxBatchSize, err)
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnv(EnvRateLimitWindow, DefaultRateLimitWindow)); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvRateLimitWindow, err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv(EnvShutdownTimeout, DefaultShutdownTimeout)); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvShutdownTimeout, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled reports whether API key authentication is active.
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default for missing or unparsable values
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
