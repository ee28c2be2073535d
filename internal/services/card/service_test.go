package card

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/slotask/internal/database"
	"github.com/thenoetrevino/slotask/internal/events"
	"github.com/thenoetrevino/slotask/internal/models"
	"github.com/thenoetrevino/slotask/internal/testutil"
)

// eventRecorder is a minimal EventPublisher that records sent events
type eventRecorder struct {
	sent []events.Event
}

func (r *eventRecorder) Connect(context.Context) error { return nil }
func (r *eventRecorder) Subscribe(int) error           { return nil }
func (r *eventRecorder) Close() error                  { return nil }
func (r *eventRecorder) Listen(context.Context) (<-chan events.Event, error) {
	return nil, nil
}
func (r *eventRecorder) SendEvent(e events.Event) error {
	r.sent = append(r.sent, e)
	return nil
}

type fixture struct {
	db        *sql.DB
	svc       Service
	events    *eventRecorder
	projectID int
	boardID   int
	cardID    int
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	rec := &eventRecorder{}
	projectID := testutil.CreateTestProject(t, db, "P")
	boardID := testutil.CreateTestBoard(t, db, projectID, "Todo")
	cardID := testutil.CreateTestCard(t, db, boardID, "Write tests")
	return fixture{
		db:        db,
		svc:       NewService(database.NewRepository(db), rec),
		events:    rec,
		projectID: projectID,
		boardID:   boardID,
		cardID:    cardID,
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateCard_FieldsOnly(t *testing.T) {
	f := setup(t)
	testutil.CreateTestCard(t, f.db, f.boardID, "Second")
	due := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	card, err := f.svc.UpdateCard(context.Background(), UpdateCardRequest{
		CardID:   f.cardID,
		Title:    strPtr("Write more tests"),
		Priority: strPtr("URGENT"),
		DueDate:  &due,
	})

	require.NoError(t, err)
	assert.Equal(t, "Write more tests", card.Title)
	assert.Equal(t, models.PriorityUrgent, card.Priority)
	require.NotNil(t, card.DueDate)
	assert.True(t, card.DueDate.Equal(due))

	boardID, position := testutil.CardPosition(t, f.db, f.cardID)
	assert.Equal(t, f.boardID, boardID)
	assert.Equal(t, 0, position)

	require.Len(t, f.events.sent, 1)
	assert.Equal(t, f.projectID, f.events.sent[0].ProjectID)

	card, err = f.svc.UpdateCard(context.Background(), UpdateCardRequest{CardID: f.cardID, ClearDueDate: true})
	require.NoError(t, err)
	assert.Nil(t, card.DueDate)
}

func TestUpdateCard_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.UpdateCard(ctx, UpdateCardRequest{CardID: f.cardID, Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = f.svc.UpdateCard(ctx, UpdateCardRequest{CardID: f.cardID, Priority: strPtr("asap")})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	_, err = f.svc.UpdateCard(ctx, UpdateCardRequest{CardID: 999, Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = f.svc.UpdateCard(ctx, UpdateCardRequest{})
	assert.ErrorIs(t, err, ErrInvalidCardID)

	assert.Empty(t, f.events.sent)
}

func TestTags_CaseSensitiveAndUnique(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	card, err := f.svc.AddTag(ctx, f.cardID, "backend")
	require.NoError(t, err)
	assert.Equal(t, []string{"backend"}, card.Tags)

	_, err = f.svc.AddTag(ctx, f.cardID, "backend")
	assert.ErrorIs(t, err, ErrDuplicateTag)

	card, err = f.svc.AddTag(ctx, f.cardID, "Backend")
	require.NoError(t, err)
	assert.Len(t, card.Tags, 2)

	card, err = f.svc.RemoveTag(ctx, f.cardID, "backend")
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend"}, card.Tags)

	_, err = f.svc.RemoveTag(ctx, f.cardID, "backend")
	assert.ErrorIs(t, err, ErrTagNotFound)

	_, err = f.svc.AddTag(ctx, f.cardID, " ")
	assert.ErrorIs(t, err, ErrEmptyTag)
}

func TestAddComment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	c, err := f.svc.AddComment(ctx, CreateCommentRequest{CardID: f.cardID, Author: "alice", Content: " looks good "})
	require.NoError(t, err)
	assert.Equal(t, "alice", c.AuthorID)
	assert.Equal(t, "looks good", c.Content)

	t.Setenv("SLOTASK_USER", "bob")
	c, err = f.svc.AddComment(ctx, CreateCommentRequest{CardID: f.cardID, Content: "+1"})
	require.NoError(t, err)
	assert.Equal(t, "bob", c.AuthorID)

	_, err = f.svc.AddComment(ctx, CreateCommentRequest{CardID: f.cardID, Content: ""})
	assert.ErrorIs(t, err, ErrEmptyComment)

	detail, err := f.svc.GetCardDetail(ctx, f.cardID)
	require.NoError(t, err)
	assert.Equal(t, "Todo", detail.BoardName)
	assert.Equal(t, f.projectID, detail.ProjectID)
	assert.Len(t, detail.Comments, 2)
}
