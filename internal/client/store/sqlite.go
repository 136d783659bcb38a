package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mrezendes/investrack/internal/dbx"
)

// SQLiteStore implements Store over a kv table using a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteStore struct {
	db dbx.DBTX
}

// NewSQLiteStore returns a SQLiteStore bound to the given DBTX.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the stored value for key, or ok=false when the key is absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the full value for key.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

// Remove deletes the value for key. Removing a missing key is not an error.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove kv[%s]: %w", key, err)
	}
	return nil
}
