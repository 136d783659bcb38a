package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/mrezendes/investrack/internal/client/store"
	"github.com/mrezendes/investrack/internal/logging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return store.NewSQLiteStore(db)
}

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	var buf bytes.Buffer
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
}

func testNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

// failingStore rejects every write; used to verify that a failed persist
// leaves in-memory state untouched.
type failingStore struct {
	store.Store
}

var errWrite = errors.New("disk full")

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errWrite
}

func (f *failingStore) Remove(ctx context.Context, key string) error {
	return errWrite
}
