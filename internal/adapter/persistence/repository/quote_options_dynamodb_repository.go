package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteOptionItem struct {
	OptionType string `dynamodbav:"optionType"`
	Value      string `dynamodbav:"value"`
}

// QuoteOptionsDynamoRepository reads the option catalog from DynamoDB.
//
// Table requirements:
//   - PK: optionType (string)
//   - SK: value (string)
//
// Values come back in sort key order within each option type.
type QuoteOptionsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteOptionsRepository = (*QuoteOptionsDynamoRepository)(nil)

func NewQuoteOptionsDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteOptionsDynamoRepository {
	return &QuoteOptionsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteOptionsDynamoRepository) ListOptions(ctx context.Context) (entities.QuoteOptions, error) {
	opts := entities.QuoteOptions{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteOptionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			opts[it.OptionType] = append(opts[it.OptionType], it.Value)
		}
	}
	return opts, nil
}

// SeedOptions writes every value of opts. Existing entries are overwritten,
// so seeding twice is harmless.
func (r *QuoteOptionsDynamoRepository) SeedOptions(ctx context.Context, opts entities.QuoteOptions) (int, error) {
	var reqs []types.WriteRequest
	for _, optionType := range slices.Sorted(maps.Keys(opts)) {
		for _, v := range opts[optionType] {
			av, err := attributevalue.MarshalMap(quoteOptionItem{OptionType: optionType, Value: v})
			if err != nil {
				return 0, err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
	}
	if err := batchWrite(ctx, r.ddb, r.tableName, reqs); err != nil {
		return 0, fmt.Errorf("seed quote options: %w", err)
	}
	return len(reqs), nil
}
