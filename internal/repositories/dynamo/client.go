package dynamo

import (
	"context"
	"fmt"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// NewClient initializes and returns a DynamoDB client
func NewClient(ctx context.Context, region, endpoint string, logger *logrus.Logger) (*dynamodb.Client, error) {
	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}
	if endpoint != "" {
		opts = append(opts, awscfg.WithBaseEndpoint(endpoint))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg)

	logger.WithFields(logrus.Fields{
		"region":   region,
		"endpoint": endpoint,
	}).Info("DynamoDB client initialized")

	return client, nil
}
