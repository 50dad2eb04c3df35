package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the part of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

const (
	// DynamoDB rejects batches larger than this.
	maxBatchWriteItems = 25

	maxUnprocessedRetries = 5
)

// unprocessedBackoff is a var so tests can shorten it.
var unprocessedBackoff = 50 * time.Millisecond

// batchWrite sends reqs to table in chunks, resubmitting whatever DynamoDB
// reports back as unprocessed.
func batchWrite(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	for start := 0; start < len(reqs); start += maxBatchWriteItems {
		end := min(start+maxBatchWriteItems, len(reqs))
		pending := map[string][]types.WriteRequest{table: reqs[start:end]}

		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return fmt.Errorf("batch write %s: %d items still unprocessed", table, len(pending[table]))
			}
			if attempt > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(unprocessedBackoff * time.Duration(attempt)):
				}
			}

			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return fmt.Errorf("batch write %s: %w", table, err)
			}
			pending = out.UnprocessedItems
			if pending == nil {
				break
			}
		}
	}
	return nil
}
