package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrQuoteExists = errors.New("quote already exists")

type clientDetailsItem struct {
	Name           string `dynamodbav:"name"`
	Address        string `dynamodbav:"address"`
	Phone          string `dynamodbav:"phone"`
	Email          string `dynamodbav:"email"`
	PropertyOwner  bool   `dynamodbav:"propertyOwner"`
	AdditionalInfo string `dynamodbav:"additionalInfo"`
}

type serviceItem struct {
	ServiceType      string   `dynamodbav:"serviceType"`
	NumOfTrees       int      `dynamodbav:"numOfTrees"`
	TreeLocation     string   `dynamodbav:"treeLocation"`
	TreeType         string   `dynamodbav:"treeType"`
	TreeHeight       string   `dynamodbav:"treeHeight"`
	ImageURLs        []string `dynamodbav:"imageUrls,omitempty"`
	UtilityLines     bool     `dynamodbav:"utilityLines"`
	StumpRemoval     bool     `dynamodbav:"stumpRemoval"`
	FallenDown       bool     `dynamodbav:"fallenDown"`
	PropertyFenced   bool     `dynamodbav:"propertyFenced"`
	EquipmentAccess  bool     `dynamodbav:"equipmentAccess"`
	EmergencyCutting bool     `dynamodbav:"emergencyCutting"`
}

type quoteItem struct {
	QuoteID       string            `dynamodbav:"quoteId"`
	ClientDetails clientDetailsItem `dynamodbav:"clientDetails"`
	Services      []serviceItem     `dynamodbav:"services"`
	Amount        float64           `dynamodbav:"amount"`
	DateCreated   string            `dynamodbav:"dateCreated"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: quoteId (string)

type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "quoteId",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, ErrQuoteExists
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quoteId": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	return quotes, nil
}

// DeleteAll scans every key and removes the items in batches. It is not
// atomic: a failure part way through leaves the remaining quotes in place.
func (r *QuoteDynamoRepository) DeleteAll(ctx context.Context) (int, error) {
	var reqs []types.WriteRequest
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "quoteId"},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		for _, key := range page.Items {
			reqs = append(reqs, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}
	}

	if err := batchWrite(ctx, r.ddb, r.tableName, reqs); err != nil {
		return 0, fmt.Errorf("delete all quotes: %w", err)
	}
	return len(reqs), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	services := make([]serviceItem, len(q.Services))
	for i, s := range q.Services {
		services[i] = serviceItem{
			ServiceType:      string(s.ServiceType),
			NumOfTrees:       s.NumOfTrees,
			TreeLocation:     s.TreeLocation,
			TreeType:         s.TreeType,
			TreeHeight:       s.TreeHeight,
			ImageURLs:        s.ImageURLs,
			UtilityLines:     s.UtilityLines,
			StumpRemoval:     s.StumpRemoval,
			FallenDown:       s.FallenDown,
			PropertyFenced:   s.PropertyFenced,
			EquipmentAccess:  s.EquipmentAccess,
			EmergencyCutting: s.EmergencyCutting,
		}
	}
	c := q.ClientDetails
	return quoteItem{
		QuoteID: q.ID,
		ClientDetails: clientDetailsItem{
			Name:           c.Name,
			Address:        c.Address,
			Phone:          c.Phone,
			Email:          c.Email,
			PropertyOwner:  c.PropertyOwner,
			AdditionalInfo: c.AdditionalInfo,
		},
		Services:    services,
		Amount:      q.Amount,
		DateCreated: q.DateCreated.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	dateCreated, _ := time.Parse(time.RFC3339Nano, it.DateCreated)
	services := make([]entities.ServiceRequest, len(it.Services))
	for i, s := range it.Services {
		services[i] = entities.ServiceRequest{
			ServiceType:      entities.ServiceType(s.ServiceType),
			NumOfTrees:       s.NumOfTrees,
			TreeLocation:     s.TreeLocation,
			TreeType:         s.TreeType,
			TreeHeight:       s.TreeHeight,
			ImageURLs:        s.ImageURLs,
			UtilityLines:     s.UtilityLines,
			StumpRemoval:     s.StumpRemoval,
			FallenDown:       s.FallenDown,
			PropertyFenced:   s.PropertyFenced,
			EquipmentAccess:  s.EquipmentAccess,
			EmergencyCutting: s.EmergencyCutting,
		}
	}
	c := it.ClientDetails
	return entities.Quote{
		ID: it.QuoteID,
		ClientDetails: entities.ClientDetails{
			Name:           c.Name,
			Address:        c.Address,
			Phone:          c.Phone,
			Email:          c.Email,
			PropertyOwner:  c.PropertyOwner,
			AdditionalInfo: c.AdditionalInfo,
		},
		Services:    services,
		Amount:      it.Amount,
		DateCreated: dateCreated,
	}
}
