package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/gantry/internal/db"
)

// NewTestDB opens a migrated in-memory database that is closed when the
// test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
