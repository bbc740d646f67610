// Package sqlite_test contains integration tests for the SQLite store.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/task/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedProject inserts a project row and returns its id.
func seedProject(t *testing.T, db *sql.DB, path string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO projects (path) VALUES (?)", path)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedTask inserts a task row under the given project id.
func seedTask(t *testing.T, db *sql.DB, projectID int64, name string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO tasks (project_id, name, finished) VALUES (?, ?, 0)", projectID, name)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
