// Package postgres implements the domain repositories on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flight-search/flight-route-query-service/internal/infrastructure/retry"
)

// Querier is the subset of *pgxpool.Pool the repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// PoolConfig holds connection pool settings.
type PoolConfig struct {
	URL             string
	MaxConns        int32
	ConnectAttempts int
	// OnRetry is told about each failed ping before the next one.
	OnRetry retry.Notify
}

// NewPool creates and verifies a pgxpool connection pool. The initial ping is
// retried up to ConnectAttempts times.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	ping := func(ctx context.Context) error { return classifyPingError(pool.Ping(ctx)) }
	if err := retry.Do(ctx, retry.Connect(cfg.ConnectAttempts), ping, cfg.OnRetry); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return pool, nil
}

// classifyPingError marks errors reported by the server itself as permanent.
// Retrying cannot fix a rejected password or a missing database.
func classifyPingError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return retry.NewPermanent(err)
	}
	return err
}
