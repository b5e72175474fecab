package repo

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"ciencia-backend-go/internal/db"
	"ciencia-backend-go/internal/schema"
)

// openTestDB hands each test its own in-memory SQLite store with the full
// schema, through the same connection provider production uses.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := schema.Create(database); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func strPtr(value string) *string {
	return &value
}
