package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/domain/pricing"
	"arborlove_quote/internal/infrastructure/metrics"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrNoServices         = errors.New("quote has no services")
	ErrInvalidServiceType = errors.New("invalid service type")
)

// CreateQuoteResult is a persisted quote plus the outcome of its confirmation.
// Notified is false when the confirmation could not be delivered; the quote is
// stored either way.
type CreateQuoteResult struct {
	Quote    entities.Quote
	Notified bool
}

// IQuoteUseCase exposes quote operations:
//   - POST /quote/create => CreateQuote()
//   - GET /quote/:id => GetByID()
//   - GET /quote/all => ListAll()
//   - DELETE /quote/all => DeleteAll()
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, client entities.ClientDetails, services []entities.ServiceRequest) (CreateQuoteResult, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	DeleteAll(ctx context.Context) (int, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.IQuoteNotifier
	log      *zap.Logger
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.IQuoteNotifier, log *zap.Logger) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateQuote prices every line item, stores the quote and then sends the
// confirmation. The total is the plain sum of the snapped line amounts.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, client entities.ClientDetails, services []entities.ServiceRequest) (CreateQuoteResult, error) {
	if len(services) == 0 {
		return CreateQuoteResult{}, ErrNoServices
	}

	results := make([]pricing.Result, len(services))
	var total float64
	for i, s := range services {
		if !s.ServiceType.Valid() {
			return CreateQuoteResult{}, fmt.Errorf("%w: service %d: %q", ErrInvalidServiceType, i, s.ServiceType)
		}
		res, err := pricing.Calculate(s)
		if err != nil {
			return CreateQuoteResult{}, fmt.Errorf("create quote: price service %d: %w", i, err)
		}
		results[i] = res
		total += res.Final
	}

	q := entities.Quote{
		ID:            uuid.NewString(),
		ClientDetails: client,
		Services:      services,
		Amount:        total,
		DateCreated:   u.now(),
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return CreateQuoteResult{}, fmt.Errorf("create quote: persist: %w", err)
	}

	for i, res := range results {
		u.log.Debug("priced service",
			zap.String("quote_id", created.ID),
			zap.Int("service_index", i),
			zap.String("classification", string(res.Classification)),
			zap.Float64("raw_amount", res.Breakdown.Raw),
			zap.Float64("final_amount", res.Final),
		)
		metrics.QuoteLineItems.WithLabelValues(string(services[i].ServiceType), string(res.Classification)).Inc()
	}
	metrics.QuotesCreated.Inc()
	metrics.QuoteAmount.Observe(created.Amount)

	notified := true
	if err := u.notifier.SendQuoteConfirmation(ctx, created); err != nil {
		notified = false
		metrics.QuoteNotificationFailures.Inc()
		u.log.Warn("quote confirmation not sent",
			zap.String("quote_id", created.ID),
			zap.Error(err),
		)
	}

	u.log.Info("quote created",
		zap.String("quote_id", created.ID),
		zap.Int("services", len(services)),
		zap.Float64("amount", created.Amount),
		zap.Bool("notified", notified),
	)
	return CreateQuoteResult{Quote: created, Notified: notified}, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListAll(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return quotes, nil
}

// DeleteAll removes every stored quote and reports how many were removed.
func (u *QuoteUseCase) DeleteAll(ctx context.Context) (int, error) {
	n, err := u.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	u.log.Info("quotes deleted", zap.Int("count", n))
	return n, nil
}
