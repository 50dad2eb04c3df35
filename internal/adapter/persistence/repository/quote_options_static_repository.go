package repository

import (
	"context"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"
)

// StaticQuoteOptionsRepository serves the built-in catalog.
type StaticQuoteOptionsRepository struct {
	opts entities.QuoteOptions
}

var _ interfaces.IQuoteOptionsRepository = (*StaticQuoteOptionsRepository)(nil)

func NewStaticQuoteOptionsRepository() *StaticQuoteOptionsRepository {
	return &StaticQuoteOptionsRepository{opts: entities.DefaultQuoteOptions()}
}

// ListOptions returns a copy so callers cannot change the catalog.
func (r *StaticQuoteOptionsRepository) ListOptions(context.Context) (entities.QuoteOptions, error) {
	out := make(entities.QuoteOptions, len(r.opts))
	for k, v := range r.opts {
		out[k] = append([]string(nil), v...)
	}
	return out, nil
}
