package note

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/slotask/internal/database"
	"github.com/thenoetrevino/slotask/internal/testutil"
)

func TestNoteLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()
	projectID := testutil.CreateTestProject(t, db, "P")

	n, err := svc.CreateNote(ctx, CreateNoteRequest{ProjectID: projectID, Title: " Standup ", Content: "- fix bugs"})
	require.NoError(t, err)
	assert.Equal(t, "Standup", n.Title)

	content := "- fixed bugs"
	updated, err := svc.UpdateNote(ctx, UpdateNoteRequest{ID: n.ID, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Standup", updated.Title)
	assert.Equal(t, content, updated.Content)

	notes, err := svc.ListNotes(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, svc.DeleteNote(ctx, n.ID))
	assert.ErrorIs(t, svc.DeleteNote(ctx, n.ID), ErrNoteNotFound)
}

func TestNoteValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, CreateNoteRequest{ProjectID: 0, Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidProjectID)

	_, err = svc.CreateNote(ctx, CreateNoteRequest{ProjectID: 1, Title: ""})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.GetNote(ctx, 77)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
