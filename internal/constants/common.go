package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs
	ServiceName = "convertly-api"

	// Default base currency for the rate table
	INRCurrency = "INR"
	USDCurrency = "USD"

	// Rate table sources
	RateSourceProvider = "provider"
	RateSourceStore    = "store"
	RateSourceSeed     = "seed"
	RateSourceCurrent  = "current"
)

// Environment variable names
const (
	EnvStage              = "STAGE"
	EnvLogLevel           = "LOG_LEVEL"
	EnvGinMode            = "GIN_MODE"
	EnvAPIPort            = "API_PORT"
	EnvRatesBaseCurrency  = "RATES_BASE_CURRENCY"
	EnvRatesProviderURL   = "RATES_PROVIDER_URL"
	EnvRatesAPIKey        = "RATES_API_KEY"
	EnvRatesAPIKeyARN     = "RATES_API_KEY_ARN"
	EnvRateRefresh        = "RATE_REFRESH_INTERVAL"
	EnvRatesSeedFile      = "RATES_SEED_FILE"
	EnvDatabaseURL        = "DATABASE_URL"
	EnvRateEventsQueueURL = "RATE_EVENTS_QUEUE_URL"
	EnvAWSEndpointURL     = "AWS_ENDPOINT_URL"
	EnvRateLimitRPS       = "RATE_LIMIT_RPS"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvCORSOrigins        = "CORS_ALLOWED_ORIGINS"
	EnvCORSMethods        = "CORS_ALLOWED_METHODS"
	EnvCORSHeaders        = "CORS_ALLOWED_HEADERS"
	EnvCORSExposedHeaders = "CORS_EXPOSED_HEADERS"
	EnvCORSCredentials    = "CORS_ALLOW_CREDENTIALS"
)
