package interfaces

import (
	"context"

	"arborlove_quote/internal/domain/entities"
)

// IQuoteOptionsRepository returns the option catalog shown on the quote form.
type IQuoteOptionsRepository interface {
	ListOptions(ctx context.Context) (entities.QuoteOptions, error)
}
