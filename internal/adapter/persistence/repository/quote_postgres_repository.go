package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

const (
	insertQuoteSQL = `INSERT INTO quotes (quote_id, client_details, services, amount, date_created)
VALUES ($1, $2, $3, $4, $5)`
	selectQuoteSQL = `SELECT quote_id, client_details, services, amount, date_created
FROM quotes WHERE quote_id = $1`
	selectAllQuotesSQL = `SELECT quote_id, client_details, services, amount, date_created
FROM quotes ORDER BY date_created, quote_id`
	deleteAllQuotesSQL = `DELETE FROM quotes`
)

// QuotePostgresRepository persists Quote entities in PostgreSQL. Client
// details and services are stored as JSONB documents.
type QuotePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(db *sql.DB) *QuotePostgresRepository {
	return &QuotePostgresRepository{db: db}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	client, err := json.Marshal(q.ClientDetails)
	if err != nil {
		return entities.Quote{}, err
	}
	services, err := json.Marshal(q.Services)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.db.ExecContext(ctx, insertQuoteSQL, q.ID, client, services, q.Amount, q.DateCreated.UTC())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return entities.Quote{}, ErrQuoteExists
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	q, err := scanQuote(r.db.QueryRowContext(ctx, selectQuoteSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	rows, err := r.db.QueryContext(ctx, selectAllQuotesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := []entities.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *QuotePostgresRepository) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, deleteAllQuotesSQL)
	if err != nil {
		return 0, fmt.Errorf("delete all quotes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (entities.Quote, error) {
	var (
		q        entities.Quote
		client   []byte
		services []byte
	)
	if err := row.Scan(&q.ID, &client, &services, &q.Amount, &q.DateCreated); err != nil {
		return entities.Quote{}, err
	}
	if err := json.Unmarshal(client, &q.ClientDetails); err != nil {
		return entities.Quote{}, fmt.Errorf("decode client details of %s: %w", q.ID, err)
	}
	if err := json.Unmarshal(services, &q.Services); err != nil {
		return entities.Quote{}, fmt.Errorf("decode services of %s: %w", q.ID, err)
	}
	q.DateCreated = q.DateCreated.UTC()
	return q, nil
}
