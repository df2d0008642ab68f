package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend persists records in a Postgres table, one JSONB row per
// record key. Intended for hosted deployments where the service has no
// durable local disk.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

func NewPostgresBackend(ctx context.Context, connString string) (*PostgresBackend, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	// Simple protocol avoids "prepared statement already exists" errors
	// behind transaction-mode poolers (PgBouncer/Supabase)
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	backend := &PostgresBackend{pool: pool}
	if err := backend.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return backend, nil
}

func (b *PostgresBackend) initSchema(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS store_records (
			key TEXT PRIMARY KEY,
			blob JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (b *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := b.pool.QueryRow(ctx, `SELECT blob FROM store_records WHERE key = $1`, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading record %s: %w", key, err)
	}
	return blob, nil
}

func (b *PostgresBackend) Save(ctx context.Context, key string, blob []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO store_records (key, blob, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`,
		key, blob)
	if err != nil {
		return fmt.Errorf("saving record %s: %w", key, err)
	}
	return nil
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
