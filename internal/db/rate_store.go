package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/constants"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/rates"
)

// ErrNoStoredRates is returned when no persisted table exists for a base.
var ErrNoStoredRates = errors.New("no stored exchange rates")

// RateStore persists the last known good rate table in Postgres.
type RateStore struct {
	pool Pool
}

func NewRateStore(pool Pool) *RateStore {
	return &RateStore{pool: pool}
}

// SaveTable replaces every stored rate for the table's base in one
// transaction. Non-positive rates are skipped.
func (s *RateStore) SaveTable(ctx context.Context, table *rates.Table) error {
	if table.Len() == 0 {
		return fmt.Errorf("cannot persist an empty rate table")
	}

	fetchedAt := pgtype.Timestamptz{}
	if !table.FetchedAt().IsZero() {
		fetchedAt = pgtype.Timestamptz{Time: table.FetchedAt(), Valid: true}
	}
	symbols := table.Symbols()

	return WithTransaction(ctx, s.pool, func(q *Queries) error {
		if err := q.DeleteExchangeRatesByBase(ctx, table.Base()); err != nil {
			return fmt.Errorf("failed to clear stored rates: %w", err)
		}
		for code, rate := range table.Rates() {
			if rate <= 0 {
				logger.Log.Warn("Skipping non-positive rate", zap.String("currency", code), zap.Float64("rate", rate))
				continue
			}
			err := q.UpsertExchangeRate(ctx, UpsertExchangeRateParams{
				BaseCurrency: table.Base(),
				Currency:     code,
				Rate:         rate,
				Symbol:       symbols[code],
				Source:       table.Source(),
				Version:      int64(table.Version()),
				FetchedAt:    fetchedAt,
			})
			if err != nil {
				return fmt.Errorf("failed to store rate for %s: %w", code, err)
			}
		}
		return nil
	})
}

// LoadTable rebuilds the stored table for base. An empty base loads the most
// recently written base.
func (s *RateStore) LoadTable(ctx context.Context, base string) (*rates.Table, error) {
	q := New(s.pool)

	base = rates.NormalizeCode(base)
	if base == "" {
		latest, err := q.GetLatestBaseCurrency(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoStoredRates
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find stored base currency: %w", err)
		}
		base = latest
	}

	rows, err := q.ListExchangeRatesByBase(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored rates: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoStoredRates
	}

	values := make(map[string]float64, len(rows))
	symbols := make(map[string]string, len(rows))
	var fetchedAt time.Time
	for _, row := range rows {
		values[row.Currency] = row.Rate
		symbols[row.Currency] = row.Symbol
		if row.FetchedAt.Valid && row.FetchedAt.Time.After(fetchedAt) {
			fetchedAt = row.FetchedAt.Time
		}
	}

	table, err := rates.NewTable(base, values, symbols, constants.RateSourceStore, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("stored rates are invalid: %w", err)
	}
	return table, nil
}
