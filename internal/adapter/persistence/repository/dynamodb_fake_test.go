package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoDBAPI good enough for the key/value
// access the repositories do.
type fakeDynamo struct {
	keyAttrs map[string][]string
	tables   map[string]map[string]map[string]types.AttributeValue

	pageSize        int
	unprocessedOnce bool
	batchCalls      int
	batchSizes      []int
	scanErr         error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keyAttrs: map[string][]string{
			"Quotes":       {"quoteId"},
			"QuoteOptions": {"optionType", "value"},
		},
		tables:   map[string]map[string]map[string]types.AttributeValue{},
		pageSize: 100,
	}
}

func (f *fakeDynamo) keyOf(table string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, a := range f.keyAttrs[table] {
		if s, ok := item[a].(*types.AttributeValueMemberS); ok {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	t := f.table(aws.ToString(in.TableName))
	k := f.keyOf(aws.ToString(in.TableName), in.Item)
	if _, exists := t[k]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}
	t[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	t := f.table(aws.ToString(in.TableName))
	return &dynamodb.GetItemOutput{Item: t[f.keyOf(aws.ToString(in.TableName), in.Key)]}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	name := aws.ToString(in.TableName)
	t := f.table(name)
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if len(in.ExclusiveStartKey) > 0 {
		after := f.keyOf(name, in.ExclusiveStartKey)
		start = sort.SearchStrings(keys, after) + 1
	}
	end := min(start+f.pageSize, len(keys))

	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		item := t[k]
		if in.ProjectionExpression != nil {
			item = f.keyItem(name, item)
		}
		out.Items = append(out.Items, item)
	}
	if end < len(keys) {
		out.LastEvaluatedKey = f.keyItem(name, t[keys[end-1]])
	}
	return out, nil
}

func (f *fakeDynamo) keyItem(table string, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{}
	for _, a := range f.keyAttrs[table] {
		key[a] = item[a]
	}
	return key
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batchCalls++
	out := &dynamodb.BatchWriteItemOutput{}
	for name, reqs := range in.RequestItems {
		if len(reqs) > maxBatchWriteItems {
			return nil, errors.New("too many items in batch")
		}
		f.batchSizes = append(f.batchSizes, len(reqs))
		if f.unprocessedOnce && len(reqs) > 1 {
			f.unprocessedOnce = false
			out.UnprocessedItems = map[string][]types.WriteRequest{name: reqs[len(reqs)-1:]}
			reqs = reqs[:len(reqs)-1]
		}
		t := f.table(name)
		for _, r := range reqs {
			switch {
			case r.PutRequest != nil:
				t[f.keyOf(name, r.PutRequest.Item)] = r.PutRequest.Item
			case r.DeleteRequest != nil:
				delete(t, f.keyOf(name, r.DeleteRequest.Key))
			}
		}
	}
	return out, nil
}
