package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/cartolafc/cache"
)

// Schema creates the cache table. It is safe to run more than once.
const Schema = `CREATE TABLE IF NOT EXISTS response_cache (
	url     TEXT PRIMARY KEY,
	payload BYTEA NOT NULL,
	expires TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS response_cache_expires_idx ON response_cache (expires);`

// New connects to postgres, creates the cache table if needed and removes the
// responses that expired since the last run.
func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, Schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error creating cache schema: %w", err)
	}

	db := &postgresDB{pool: pool, clock: clock}
	if _, err := db.Purge(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT payload FROM response_cache WHERE url=@url AND expires > @now`

	args := pgx.NamedArgs{
		"url": key,
		"now": db.clock.Now().UTC(),
	}

	var payload []byte
	err := db.pool.QueryRow(ctx, query, args).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading cached response: %w", err)
	}
	return payload, nil
}

func (db *postgresDB) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	const query = `INSERT INTO response_cache (url, payload, expires)
					VALUES (@url, @payload, @expires)
					ON CONFLICT (url) DO UPDATE
						SET payload = EXCLUDED.payload, expires = EXCLUDED.expires`

	args := pgx.NamedArgs{
		"url":     key,
		"payload": value,
		"expires": db.clock.Now().UTC().Add(cache.NormalizeTTL(ttl)),
	}

	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving cached response: %w", err)
	}
	return nil
}

func (db *postgresDB) Purge(ctx context.Context) (int64, error) {
	const query = `DELETE FROM response_cache WHERE expires <= @now`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"now": db.clock.Now().UTC()})
	if err != nil {
		return 0, fmt.Errorf("error purging cached responses: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (db *postgresDB) Close() {
	db.pool.Close()
}
