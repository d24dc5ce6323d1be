package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"acenteapi/internal/repository"
)

// KVPostgres stores whole-value JSON settings blobs keyed by logical name.
// Saves always replace the full value (upsert), mirroring the original
// load/save storage contract of the application.
type KVPostgres struct {
	db *sql.DB
}

// NewKVPostgres creates a new KVPostgres repository.
func NewKVPostgres(db *sql.DB) *KVPostgres {
	return &KVPostgres{db: db}
}

var _ repository.KVRepository = (*KVPostgres)(nil)

// Load returns the stored JSON value for key, or nil if absent.
func (r *KVPostgres) Load(ctx context.Context, key string) (json.RawMessage, error) {
	const q = `SELECT value FROM kv_store WHERE key = $1`
	var value []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Save upserts the JSON value under key.
func (r *KVPostgres) Save(ctx context.Context, key string, value json.RawMessage) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := r.db.ExecContext(ctx, q, key, []byte(value))
	return err
}
