// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/helpers"
)

const (
	DefaultPort            = "8000"
	DefaultRateLimitRPS    = 100
	DefaultRateLimitBurst  = 200
	DefaultRefreshInterval = time.Hour
)

// Config is the full runtime configuration of the API.
type Config struct {
	Stage    string
	LogLevel string
	GinMode  string
	Port     string

	BaseCurrency    string
	ProviderURL     string
	ProviderAPIKey  string
	RefreshInterval time.Duration
	SeedFile        string
	DatabaseURL     string
	EventsQueueURL  string
	AWSEndpointURL  string

	RateLimitRPS   float64
	RateLimitBurst int

	CORS CORSConfig
}

// CORSConfig lists the allowed origins, methods and headers.
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
}

// SecretResolver fetches a secret by ARN env var, falling back to a plain
// env var. *awsclient.SecretsManagerClient satisfies it.
type SecretResolver interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// LoadDotEnv reads .env into the process environment. A missing file is not
// an error.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to load .env file")
	}
	return nil
}

// Load builds a Config from the environment. The provider API key is
// resolved separately by ResolveProviderAPIKey.
func Load() (*Config, error) {
	rawStage := helpers.GetEnvWithDefault(constants.EnvStage, helpers.StageLocal)
	stage, ok := helpers.ParseStage(rawStage)
	if !ok {
		return nil, errors.Errorf("invalid %s %q: must be one of %s, %s, %s",
			constants.EnvStage, rawStage, helpers.StageLocal, helpers.StageDev, helpers.StageProd)
	}

	port := helpers.GetEnvWithDefault(constants.EnvAPIPort, DefaultPort)
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return nil, errors.Errorf("invalid %s %q", constants.EnvAPIPort, port)
	}

	rps := float64(DefaultRateLimitRPS)
	if raw := helpers.GetEnvWithDefault(constants.EnvRateLimitRPS, ""); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return nil, errors.Errorf("invalid %s %q", constants.EnvRateLimitRPS, raw)
		}
		rps = v
	}
	burst := helpers.GetEnvInt(constants.EnvRateLimitBurst, DefaultRateLimitBurst)
	if burst <= 0 {
		return nil, errors.Errorf("invalid %s %d", constants.EnvRateLimitBurst, burst)
	}

	base := strings.ToUpper(helpers.GetEnvWithDefault(constants.EnvRatesBaseCurrency, constants.INRCurrency))

	return &Config{
		Stage:           stage,
		LogLevel:        helpers.GetEnvWithDefault(constants.EnvLogLevel, ""),
		GinMode:         helpers.GetEnvWithDefault(constants.EnvGinMode, ""),
		Port:            port,
		BaseCurrency:    base,
		ProviderURL:     helpers.GetEnvWithDefault(constants.EnvRatesProviderURL, ""),
		ProviderAPIKey:  helpers.GetEnvWithDefault(constants.EnvRatesAPIKey, ""),
		RefreshInterval: helpers.GetEnvDuration(constants.EnvRateRefresh, DefaultRefreshInterval),
		SeedFile:        helpers.GetEnvWithDefault(constants.EnvRatesSeedFile, ""),
		DatabaseURL:     helpers.GetEnvWithDefault(constants.EnvDatabaseURL, ""),
		EventsQueueURL:  helpers.GetEnvWithDefault(constants.EnvRateEventsQueueURL, ""),
		AWSEndpointURL:  helpers.GetEnvWithDefault(constants.EnvAWSEndpointURL, ""),
		RateLimitRPS:    rps,
		RateLimitBurst:  burst,
		CORS:            loadCORS(),
	}, nil
}

func loadCORS() CORSConfig {
	cfg := CORSConfig{
		AllowOrigins:     helpers.SplitAndTrim(helpers.GetEnvWithDefault(constants.EnvCORSOrigins, "")),
		AllowMethods:     helpers.SplitAndTrim(helpers.GetEnvWithDefault(constants.EnvCORSMethods, "")),
		AllowHeaders:     helpers.SplitAndTrim(helpers.GetEnvWithDefault(constants.EnvCORSHeaders, "")),
		ExposeHeaders:    helpers.SplitAndTrim(helpers.GetEnvWithDefault(constants.EnvCORSExposedHeaders, "")),
		AllowCredentials: helpers.GetEnvWithDefault(constants.EnvCORSCredentials, "") == "true",
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	}
	if len(cfg.ExposeHeaders) == 0 {
		cfg.ExposeHeaders = []string{"X-Correlation-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	}
	return cfg
}

// ResolveProviderAPIKey looks the key up in Secrets Manager when
// RATES_API_KEY_ARN is set, otherwise keeps RATES_API_KEY.
func (c *Config) ResolveProviderAPIKey(ctx context.Context, secrets SecretResolver) error {
	if helpers.GetEnvWithDefault(constants.EnvRatesAPIKeyARN, "") == "" || secrets == nil {
		return nil
	}
	key, err := secrets.GetSecretString(ctx, constants.EnvRatesAPIKeyARN, constants.EnvRatesAPIKey)
	if err != nil {
		return errors.Wrap(err, "failed to resolve rate provider API key")
	}
	c.ProviderAPIKey = key
	return nil
}

// IsDevelopment reports whether verbose request logging should be enabled.
func (c *Config) IsDevelopment() bool {
	return c.Stage != helpers.StageProd && c.GinMode != "release"
}

// NeedsAWS reports whether any AWS client has to be built.
func (c *Config) NeedsAWS() bool {
	return c.EventsQueueURL != "" || helpers.GetEnvWithDefault(constants.EnvRatesAPIKeyARN, "") != ""
}
