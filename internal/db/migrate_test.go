package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)`,
		"k", "v", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	var value string
	require.NoError(t, database.QueryRow(
		`SELECT value FROM documents WHERE key = ?`, "k",
	).Scan(&value))
	assert.Equal(t, "v", value)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Open already ran the migrations once; a second pass must not fail.
	require.NoError(t, Migrate(database))
}
