package link

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/slotask/internal/database"
	"github.com/thenoetrevino/slotask/internal/testutil"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://go.dev/doc", "https://go.dev/doc", false},
		{"example.com/a", "https://example.com/a", false},
		{"http://localhost:8080", "http://localhost:8080", false},
		{"ftp://files.example.com", "", true},
		{"", "", true},
		{"https://", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, err := NormalizeURL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestLinkLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()
	projectID := testutil.CreateTestProject(t, db, "P")

	l, err := svc.CreateLink(ctx, CreateLinkRequest{ProjectID: projectID, URL: "go.dev"})
	require.NoError(t, err)
	assert.Equal(t, "go.dev", l.Title)
	assert.Equal(t, "https://go.dev", l.URL)

	links, err := svc.ListLinks(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	require.NoError(t, svc.DeleteLink(ctx, l.ID))
	assert.ErrorIs(t, svc.DeleteLink(ctx, l.ID), ErrLinkNotFound)
}
