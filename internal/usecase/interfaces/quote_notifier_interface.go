package interfaces

import (
	"context"

	"arborlove_quote/internal/domain/entities"
)

// IQuoteNotifier delivers the confirmation for a persisted quote: one message
// to the client and one to the business.
type IQuoteNotifier interface {
	SendQuoteConfirmation(ctx context.Context, q entities.Quote) error
}
