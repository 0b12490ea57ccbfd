package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convertly/convertly-api/internal/constants"
)

var allEnv = []string{
	constants.EnvStage, constants.EnvLogLevel, constants.EnvGinMode, constants.EnvAPIPort,
	constants.EnvRatesBaseCurrency, constants.EnvRatesProviderURL, constants.EnvRatesAPIKey,
	constants.EnvRatesAPIKeyARN, constants.EnvRateRefresh, constants.EnvRatesSeedFile,
	constants.EnvDatabaseURL, constants.EnvRateEventsQueueURL, constants.EnvAWSEndpointURL,
	constants.EnvRateLimitRPS, constants.EnvRateLimitBurst, constants.EnvCORSOrigins,
	constants.EnvCORSMethods, constants.EnvCORSHeaders, constants.EnvCORSExposedHeaders,
	constants.EnvCORSCredentials,
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnv {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "INR", cfg.BaseCurrency)
	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
	assert.Empty(t, cfg.DatabaseURL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.NeedsAWS())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvStage, "prod")
	t.Setenv(constants.EnvAPIPort, "9090")
	t.Setenv(constants.EnvRatesBaseCurrency, "usd")
	t.Setenv(constants.EnvRateRefresh, "15m")
	t.Setenv(constants.EnvRateLimitRPS, "2.5")
	t.Setenv(constants.EnvRateLimitBurst, "5")
	t.Setenv(constants.EnvRateEventsQueueURL, "http://localhost:4566/000000000000/rates")
	t.Setenv(constants.EnvCORSOrigins, "https://a.example, https://b.example")
	t.Setenv(constants.EnvCORSCredentials, "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Stage)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.NeedsAWS())
}

func TestLoad_StageAliases(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvStage, " Production ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Stage)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"stage", constants.EnvStage, "staging"},
		{"port", constants.EnvAPIPort, "eighty"},
		{"port range", constants.EnvAPIPort, "70000"},
		{"rps", constants.EnvRateLimitRPS, "-1"},
		{"burst", constants.EnvRateLimitBurst, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

type fakeSecrets struct {
	value string
	err   error
	calls int
}

func (f *fakeSecrets) GetSecretString(ctx context.Context, arnEnv, fallbackEnv string) (string, error) {
	f.calls++
	return f.value, f.err
}

func TestResolveProviderAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvRatesAPIKey, "plain")
	cfg, err := Load()
	require.NoError(t, err)

	secrets := &fakeSecrets{value: "from-secrets"}
	require.NoError(t, cfg.ResolveProviderAPIKey(context.Background(), secrets))
	assert.Equal(t, "plain", cfg.ProviderAPIKey)
	assert.Zero(t, secrets.calls, "no ARN configured")

	t.Setenv(constants.EnvRatesAPIKeyARN, "arn:aws:secretsmanager:us-east-1:000000000000:secret:rates")
	require.NoError(t, cfg.ResolveProviderAPIKey(context.Background(), secrets))
	assert.Equal(t, "from-secrets", cfg.ProviderAPIKey)

	failing := &fakeSecrets{err: errors.New("access denied")}
	err = cfg.ResolveProviderAPIKey(context.Background(), failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RATES_SEED_FILE=seed.yaml\n"), 0o600))
	// godotenv never overrides variables that are already set, even to "".
	require.NoError(t, os.Unsetenv(constants.EnvRatesSeedFile))
	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
}
