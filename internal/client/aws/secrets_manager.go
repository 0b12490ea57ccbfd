package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
)

// SecretsAPI is the subset of the Secrets Manager API the client uses.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from Secrets Manager with an
// environment variable fallback.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates a client from a loaded AWS config.
func NewSecretsManagerClient(cfg aws.Config) *SecretsManagerClient {
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}
}

// NewSecretsManagerClientWithAPI wraps an existing API implementation.
func NewSecretsManagerClientWithAPI(api SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: api}
}

// GetSecretString fetches the secret named by the ARN in secretArnEnvVar.
// If that variable is unset or the fetch fails it falls back to the plain
// value of fallbackEnvVar. A secret stored as a single-key JSON object is
// unwrapped to its value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := strings.TrimSpace(os.Getenv(secretArnEnvVar))

	if secretArn != "" {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Log.Info("Successfully fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return unwrapSecret(*result.SecretString), nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if secretValue := strings.TrimSpace(os.Getenv(fallbackEnvVar)); secretValue != "" {
		logger.Log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func unwrapSecret(raw string) string {
	var obj map[string]string
	if err := json.Unmarshal([]byte(raw), &obj); err != nil || len(obj) != 1 {
		return raw
	}
	for _, v := range obj {
		return v
	}
	return raw
}
