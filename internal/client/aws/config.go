package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const localRegion = "us-east-1"

// LoadConfig loads the default AWS configuration chain. When endpointURL is
// set (LocalStack, ElasticMQ) static dummy credentials are used and every
// client is pointed at that endpoint.
func LoadConfig(ctx context.Context, endpointURL string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if endpointURL != "" {
		opts = append(opts,
			config.WithRegion(localRegion),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	if endpointURL != "" {
		cfg.BaseEndpoint = aws.String(endpointURL)
	}
	return cfg, nil
}
