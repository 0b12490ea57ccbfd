package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
)

// Pool is the connection surface the rate store needs. *pgxpool.Pool
// satisfies it.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NewPool parses dsn and opens a small connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}

// TransactionFunc runs inside a database transaction.
type TransactionFunc func(q *Queries) error

// WithTransaction runs fn in a transaction, committing when it returns nil
// and rolling back otherwise.
func WithTransaction(ctx context.Context, pool Pool, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// rollback after commit returns ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(New(pool).WithTx(tx)); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
