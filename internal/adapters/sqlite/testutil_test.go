// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests always run against the
// authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/fleet/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err = testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedAsset inserts a test asset and returns its code.
func seedAsset(t *testing.T, db *sql.DB, code string) string {
	t.Helper()
	if code == "" {
		code = "GEN-001"
	}
	_, err := db.Exec("INSERT INTO assets (code, brand, model, status) VALUES (?, 'Cummins', 'C90D5', 'ready')", code)
	if err != nil {
		t.Fatalf("failed to seed asset: %v", err)
	}
	return code
}
