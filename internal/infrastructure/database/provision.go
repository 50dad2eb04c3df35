package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAPI is the part of *dynamodb.Client needed to create tables.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

// QuotesTableInput describes the quotes table: partition key quoteId.
func QuotesTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("quoteId"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("quoteId"), AttributeType: types.ScalarAttributeTypeS},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

// QuoteOptionsTableInput describes the option catalog table: partition key
// optionType, sort key value.
func QuoteOptionsTableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("optionType"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("value"), KeyType: types.KeyTypeRange},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("optionType"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("value"), AttributeType: types.ScalarAttributeTypeS},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

// EnsureTable creates the table unless it already exists, then waits until
// it is active.
func EnsureTable(ctx context.Context, api TableAPI, in *dynamodb.CreateTableInput, maxWait time.Duration, log *zap.Logger) error {
	name := aws.ToString(in.TableName)

	_, err := api.CreateTable(ctx, in)
	var inUse *types.ResourceInUseException
	switch {
	case err == nil:
		log.Info("table created", zap.String("table", name))
	case errors.As(err, &inUse):
		log.Info("table already exists", zap.String("table", name))
	default:
		return fmt.Errorf("create table %s: %w", name, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(api, func(o *dynamodb.TableExistsWaiterOptions) {
		o.MinDelay = 500 * time.Millisecond
		o.MaxDelay = 5 * time.Second
	})
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, maxWait); err != nil {
		return fmt.Errorf("wait for table %s: %w", name, err)
	}
	log.Info("table active", zap.String("table", name))
	return nil
}
