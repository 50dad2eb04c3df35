package usecase

import (
	"context"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"
)

// IQuoteOptionsUseCase serves the allowed values for every quote form field.
type IQuoteOptionsUseCase interface {
	ListOptions(ctx context.Context) (entities.QuoteOptions, error)
}

type QuoteOptionsUseCase struct {
	repo interfaces.IQuoteOptionsRepository
}

var _ IQuoteOptionsUseCase = (*QuoteOptionsUseCase)(nil)

func NewQuoteOptionsUseCase(repo interfaces.IQuoteOptionsRepository) *QuoteOptionsUseCase {
	return &QuoteOptionsUseCase{repo: repo}
}

func (u *QuoteOptionsUseCase) ListOptions(ctx context.Context) (entities.QuoteOptions, error) {
	opts, err := u.repo.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = entities.QuoteOptions{}
	}
	return opts, nil
}
