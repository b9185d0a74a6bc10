package config

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitWindow = "RATE_LIMIT_WINDOW"
	EnvMaxTrackedIPs   = "RATE_LIMIT_MAX_TRACKED_IPS"
	EnvMaxBatchSize    = "MAX_BATCH_SIZE"
	EnvLenient         = "LENIENT_INPUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "wareki-api"
	DefaultVersion         = "dev"
	DefaultRateLimit       = 1000
	DefaultRateLimitWindow = "5m"
	DefaultMaxTrackedIPs   = 10000
	DefaultMaxBatchSize    = 100
	DefaultShutdownTimeout = "10s"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
