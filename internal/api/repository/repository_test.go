package repository

import (
	"testing"

	"adboard/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory database with the full schema. The pool
// is pinned to a single connection because every :memory: connection is
// its own database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, db.Initialize(pool))
	return pool
}
