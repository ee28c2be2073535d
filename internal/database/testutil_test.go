package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/slotask/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ============================================================================
// FIXTURES
// ============================================================================

func createTestProject(t *testing.T, repo *Repository, name string) *models.Project {
	t.Helper()
	p, err := repo.CreateProject(context.Background(), name, "#7D56F4", "", "tester")
	if err != nil {
		t.Fatalf("Failed to create project %q: %v", name, err)
	}
	return p
}

func createTestBoard(t *testing.T, repo *Repository, projectID int, name string, position int) *models.Board {
	t.Helper()
	b, err := repo.InsertBoard(context.Background(), projectID, name, position)
	if err != nil {
		t.Fatalf("Failed to create board %q: %v", name, err)
	}
	return b
}

func createTestCard(t *testing.T, repo *Repository, boardID int, title string, position int) *models.Card {
	t.Helper()
	c, err := repo.InsertCard(context.Background(), boardID, models.CardFields{Title: title}, position)
	if err != nil {
		t.Fatalf("Failed to create card %q: %v", title, err)
	}
	return c
}
