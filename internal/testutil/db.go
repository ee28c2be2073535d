// Package testutil holds helpers shared by package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/slotask/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the real schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// A second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestProject creates a bare project and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO projects (name, color, description, owner_id) VALUES (?, ?, ?, ?)",
		name, "#7D56F4", "Test description", "tester")
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestBoard appends a board to a project and returns its ID
func CreateTestBoard(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO boards (project_id, name, position)
		 VALUES (?, ?, (SELECT COUNT(*) FROM boards WHERE project_id = ?))`,
		projectID, name, projectID)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestCard appends a card to a board and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, boardID int, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO cards (board_id, title, position)
		 VALUES (?, ?, (SELECT COUNT(*) FROM cards WHERE board_id = ?))`,
		boardID, title, boardID)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CardPosition reads a card's stored board and position
func CardPosition(t *testing.T, db *sql.DB, cardID int) (boardID, position int) {
	t.Helper()
	err := db.QueryRowContext(context.Background(),
		"SELECT board_id, position FROM cards WHERE id = ?", cardID,
	).Scan(&boardID, &position)
	if err != nil {
		t.Fatalf("Failed to read card %d: %v", cardID, err)
	}
	return boardID, position
}
