package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// AWSOptions are the settings shared by every AWS client of the service.
type AWSOptions struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewAWSConfig builds the shared aws.Config from static credentials.
//
// Local DynamoDB and MinIO do not validate credentials, but the AWS SDK
// requires them, so "local" defaults are fine there.
func NewAWSConfig(ctx context.Context, opts AWSOptions) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return cfg, nil
}

// ConnectDynamoDB creates a DynamoDB client. A non-empty endpoint (e.g.
// http://dynamodb:8000) points the client at DynamoDB Local.
func ConnectDynamoDB(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
