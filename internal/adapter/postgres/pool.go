package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// Missing connection parameters yield domain.ErrConfiguration before any
// connection is attempted. It applies pool settings (max/min conns,
// lifetimes), pings the database for fail-fast validation, and returns the
// ready pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if missing := cfg.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("database: missing %s: %w", strings.Join(missing, ", "), domain.ErrConfiguration)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w: %w", domain.ErrConfiguration, err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w: %w", domain.ErrBackend, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w: %w", domain.ErrBackend, err)
	}

	return pool, nil
}
