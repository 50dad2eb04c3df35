package repository

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"
)

const (
	selectOptionsSQL = `SELECT option_type, value FROM quote_options ORDER BY option_type, position, value`
	upsertOptionSQL  = `INSERT INTO quote_options (option_type, value, position) VALUES ($1, $2, $3)
ON CONFLICT (option_type, value) DO UPDATE SET position = EXCLUDED.position`
)

// QuoteOptionsPostgresRepository reads the option catalog from the
// quote_options table. Values keep the order they were seeded in.
type QuoteOptionsPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteOptionsRepository = (*QuoteOptionsPostgresRepository)(nil)

func NewQuoteOptionsPostgresRepository(db *sql.DB) *QuoteOptionsPostgresRepository {
	return &QuoteOptionsPostgresRepository{db: db}
}

func (r *QuoteOptionsPostgresRepository) ListOptions(ctx context.Context) (entities.QuoteOptions, error) {
	rows, err := r.db.QueryContext(ctx, selectOptionsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opts := entities.QuoteOptions{}
	for rows.Next() {
		var optionType, value string
		if err := rows.Scan(&optionType, &value); err != nil {
			return nil, err
		}
		opts[optionType] = append(opts[optionType], value)
	}
	return opts, rows.Err()
}

// SeedOptions upserts every value of opts in a single transaction.
func (r *QuoteOptionsPostgresRepository) SeedOptions(ctx context.Context, opts entities.QuoteOptions) (n int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, optionType := range slices.Sorted(maps.Keys(opts)) {
		for pos, v := range opts[optionType] {
			if _, err = tx.ExecContext(ctx, upsertOptionSQL, optionType, v, pos); err != nil {
				return 0, fmt.Errorf("seed %s %q: %w", optionType, v, err)
			}
			n++
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}
