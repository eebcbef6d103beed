package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	database, err := NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})

	ctx := context.Background()

	// The schema is initialised and visible to both connections.
	_, err = database.ReadWrite.ExecContext(ctx,
		`INSERT INTO assessments (id, data, updated_at) VALUES ('test', '{}', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var count int
	err = database.ReadOnly.QueryRowxContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The read-only connection rejects writes.
	_, err = database.ReadOnly.ExecContext(ctx,
		`INSERT INTO assessments (id, data, updated_at) VALUES ('test2', '{}', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestNewDatabaseIsolatesInMemoryInstances(t *testing.T) {
	first, err := NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, first.Close())
	})

	second, err := NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, second.Close())
	})

	ctx := context.Background()
	_, err = first.ReadWrite.ExecContext(ctx,
		`INSERT INTO assessments (id, data, updated_at) VALUES ('only-first', '{}', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var count int
	err = second.ReadOnly.QueryRowxContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
