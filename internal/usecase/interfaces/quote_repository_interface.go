package interfaces

import (
	"context"

	"arborlove_quote/internal/domain/entities"
)

// IQuoteRepository abstracts quote persistence. DynamoDB and PostgreSQL
// implementations live in adapter/persistence/repository.
//
// GetByID returns a zero-value Quote (empty ID) when nothing is stored under id.
// Create is all-or-nothing: either the whole quote is stored or an error is returned.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	DeleteAll(ctx context.Context) (int, error)
}
