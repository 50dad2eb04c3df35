package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const quoteOptionsCacheKey = "quote:options"

// CachedQuoteOptionsRepository is a read-through Redis cache in front of
// another options repository. Cache failures are logged and the source is
// read directly.
type CachedQuoteOptionsRepository struct {
	next   interfaces.IQuoteOptionsRepository
	client redis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

var _ interfaces.IQuoteOptionsRepository = (*CachedQuoteOptionsRepository)(nil)

func NewCachedQuoteOptionsRepository(next interfaces.IQuoteOptionsRepository, client redis.Cmdable, ttl time.Duration, log *zap.Logger) *CachedQuoteOptionsRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedQuoteOptionsRepository{next: next, client: client, ttl: ttl, log: log}
}

func (r *CachedQuoteOptionsRepository) ListOptions(ctx context.Context) (entities.QuoteOptions, error) {
	data, err := r.client.Get(ctx, quoteOptionsCacheKey).Bytes()
	switch {
	case err == nil:
		var opts entities.QuoteOptions
		if err := json.Unmarshal(data, &opts); err == nil {
			return opts, nil
		}
		r.log.Warn("discarding unreadable cached quote options")
	case !errors.Is(err, redis.Nil):
		r.log.Warn("quote options cache get failed", zap.Error(err))
	}

	opts, err := r.next.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(opts)
	if err != nil {
		return opts, nil
	}
	if err := r.client.Set(ctx, quoteOptionsCacheKey, data, r.ttl).Err(); err != nil {
		r.log.Warn("quote options cache set failed", zap.Error(err))
	}
	return opts, nil
}

// Invalidate drops the cached catalog, typically after reseeding.
func (r *CachedQuoteOptionsRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, quoteOptionsCacheKey).Err()
}
