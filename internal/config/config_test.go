package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvSchemaVersion, EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment,
	EnvServiceName, EnvVersion, EnvAPIKey, EnvTrustedProxies, EnvRateLimit,
	EnvRateLimitWindow, EnvMaxTrackedIPs, EnvMaxBatchSize, EnvLenient,
	EnvShutdownTimeout,
}

// clearEnvVars unsets every variable Load reads and restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "wareki-api", cfg.ServiceName)
		assert.Empty(t, cfg.APIKey)
		assert.False(t, cfg.AuthEnabled())
		assert.Equal(t, 1000, cfg.RateLimit)
		assert.Equal(t, 5*time.Minute, cfg.RateLimitWindow)
		assert.Equal(t, 100, cfg.MaxBatchSize)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.Lenient)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_LIMIT_WINDOW", "1m")
		t.Setenv("MAX_BATCH_SIZE", "20")
		t.Setenv("LENIENT_INPUT", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.True(t, cfg.AuthEnabled())
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 50, cfg.RateLimit)
		assert.Equal(t, time.Minute, cfg.RateLimitWindow)
		assert.Equal(t, 20, cfg.MaxBatchSize)
		assert.True(t, cfg.Lenient)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("returns error for invalid durations", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RATE_LIMIT_WINDOW", "soon")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "RATE_LIMIT_WINDOW")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", true},
			{"negative port", "-1", true},
			{"max valid port", "65535", false},
			{"above max port", "65536", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            8080,
			LogLevel:        "info",
			LogFormat:       "text",
			Environment:     "dev",
			ServiceName:     "wareki-api",
			RateLimit:       10,
			RateLimitWindow: time.Minute,
			MaxTrackedIPs:   10,
			MaxBatchSize:    100,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, "LogLevel"},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, "LogFormat"},
		{"zero rate limit", func(c *Config) { c.RateLimit = 0 }, "RateLimit"},
		{"sub-second window", func(c *Config) { c.RateLimitWindow = time.Millisecond }, "RateLimitWindow"},
		{"batch too large", func(c *Config) { c.MaxBatchSize = 20000 }, "MaxBatchSize"},
		{"bad proxy", func(c *Config) { c.TrustedProxies = []string{"proxy.local"} }, "TrustedProxies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateEnv(t *testing.T) {
	t.Run("unset version is accepted", func(t *testing.T) {
		clearEnvVars(t)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, "0.9")

		err := ValidateEnv()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

	t.Run("example api key", func(t *testing.T) {
		warnings, err := ValidateEnvWithWarnings(&Config{APIKey: ExampleAPIKey, Environment: "dev"})
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "example value")
	})

	t.Run("open api in production", func(t *testing.T) {
		warnings, err := ValidateEnvWithWarnings(&Config{Environment: "prod"})
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "unauthenticated")
	})

	t.Run("clean configuration", func(t *testing.T) {
		warnings, err := ValidateEnvWithWarnings(&Config{APIKey: "secret", Environment: "prod"})
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "not-a-number")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	t.Setenv("TEST_INT_VAR", "-10")
	assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))

	t.Setenv("TEST_BOOL_VAR", "yes")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true), "unparsable falls back to default")
	t.Setenv("TEST_BOOL_VAR", "0")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_LIST_VAR", "")
	assert.Nil(t, getEnvAsList("TEST_LIST_VAR"))
}
