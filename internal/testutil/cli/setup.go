// Package cli holds helpers for CLI command tests. It lives apart from
// testutil so service tests can import testutil without pulling in the app.
package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/slotask/internal/app"
	"github.com/thenoetrevino/slotask/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App has no event publisher; event delivery is tested elsewhere.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestProject(t, db, name)
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
func CreateTestBoard(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	return testutil.CreateTestBoard(t, db, projectID, name)
}

// CreateTestCard wraps testutil.CreateTestCard for CLI tests
func CreateTestCard(t *testing.T, db *sql.DB, boardID int, title string) int {
	t.Helper()
	return testutil.CreateTestCard(t, db, boardID, title)
}
