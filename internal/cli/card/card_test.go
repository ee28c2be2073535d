package card

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	slotaskcli "github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/models"
	"github.com/thenoetrevino/slotask/internal/testutil"
	"github.com/thenoetrevino/slotask/internal/testutil/cli"
)

func TestCreateCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "P")
	boardID := cli.CreateTestBoard(t, db, projectID, "Todo")
	board := strconv.Itoa(boardID)

	t.Run("appends to the board", func(t *testing.T) {
		for i, title := range []string{"first", "second"} {
			output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
				"--board", board, "--title", title, "--json",
			})
			require.NoError(t, err)

			var c models.Card
			cli.JSONData(t, output, &c)
			assert.Equal(t, title, c.Title)
			assert.Equal(t, i, c.Position)
			assert.Equal(t, models.PriorityMedium, c.Priority)
		}
	})

	t.Run("all fields", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--board", board,
			"--title", "Ship",
			"--description", "v1",
			"--priority", "URGENT",
			"--due", "2025-03-31",
			"--json",
		})
		require.NoError(t, err)

		var c models.Card
		cli.JSONData(t, output, &c)
		assert.Equal(t, models.PriorityUrgent, c.Priority)
		assert.Equal(t, "v1", c.Description)
		require.NotNil(t, c.DueDate)
		assert.Equal(t, 31, c.DueDate.Day())
	})

	t.Run("invalid priority", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--board", board, "--title", "x", "--priority", "someday", "--json",
		})
		assert.Equal(t, slotaskcli.ExitValidation, slotaskcli.ExitCode(err))
		assert.Equal(t, "VALIDATION_ERROR", cli.JSONErrorCode(t, output))
	})

	t.Run("bad due date", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--board", board, "--title", "x", "--due", "tomorrow",
		})
		assert.Equal(t, slotaskcli.ExitUsage, slotaskcli.ExitCode(err))
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--board", board, "--title", strings.Repeat("t", 256),
		})
		assert.Equal(t, slotaskcli.ExitValidation, slotaskcli.ExitCode(err))
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--board", "999", "--title", "x"})
		assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
	})
}

func TestMoveCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "P")
	todo := cli.CreateTestBoard(t, db, projectID, "Todo")
	done := cli.CreateTestBoard(t, db, projectID, "Done")
	a := cli.CreateTestCard(t, db, todo, "a")
	b := cli.CreateTestCard(t, db, todo, "b")
	c := cli.CreateTestCard(t, db, todo, "c")

	t.Run("reorder within the board", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{
			strconv.Itoa(c), "--index", "0", "--json",
		})
		require.NoError(t, err)

		var res struct {
			BoardID  int `json:"board_id"`
			Position int `json:"position"`
		}
		cli.JSONData(t, output, &res)
		assert.Equal(t, todo, res.BoardID)
		assert.Equal(t, 0, res.Position)

		for want, id := range []int{c, a, b} {
			boardID, pos := testutil.CardPosition(t, db, id)
			assert.Equal(t, todo, boardID)
			assert.Equal(t, want, pos)
		}
	})

	t.Run("to the bottom of another board", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{
			strconv.Itoa(a), "--to", strconv.Itoa(done),
		})
		require.NoError(t, err)

		boardID, pos := testutil.CardPosition(t, db, a)
		assert.Equal(t, done, boardID)
		assert.Equal(t, 0, pos)

		_, pos = testutil.CardPosition(t, db, b)
		assert.Equal(t, 1, pos, "source board is renumbered")
	})

	t.Run("index out of range", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{
			strconv.Itoa(b), "--to", strconv.Itoa(done), "--index", "5", "--json",
		})
		assert.Equal(t, slotaskcli.ExitValidation, slotaskcli.ExitCode(err))
		assert.Equal(t, "VALIDATION_ERROR", cli.JSONErrorCode(t, output))
	})

	t.Run("board of another project", func(t *testing.T) {
		other := cli.CreateTestProject(t, db, "Other")
		foreign := cli.CreateTestBoard(t, db, other, "Foreign")
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{
			strconv.Itoa(b), "--to", strconv.Itoa(foreign),
		})
		assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"999", "--to", strconv.Itoa(done)})
		assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
	})
}

func TestShowCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "P")
	boardID := cli.CreateTestBoard(t, db, projectID, "Todo")
	cardID := cli.CreateTestCard(t, db, boardID, "Write docs")
	id := strconv.Itoa(cardID)

	_, err := cli.ExecuteCLICommand(t, app, CommentCmd(), []string{id, "--message", "on it", "--author", "sam"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{id})
	require.NoError(t, err)
	assert.Contains(t, output, "Write docs")
	assert.Contains(t, output, "Todo")
	assert.Contains(t, output, "on it")

	output, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{id, "--json"})
	require.NoError(t, err)
	var detail models.CardDetail
	cli.JSONData(t, output, &detail)
	assert.Equal(t, projectID, detail.ProjectID)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "sam", detail.Comments[0].AuthorID)

	_, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"999"})
	assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
}

func TestUpdateCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "P")
	boardID := cli.CreateTestBoard(t, db, projectID, "Todo")
	cardID := cli.CreateTestCard(t, db, boardID, "Old")
	id := strconv.Itoa(cardID)

	engine, err := app.OpenBoard(context.Background(), projectID)
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		id, "--title", "New", "--priority", "high", "--due", "2025-05-01", "--json",
	})
	require.NoError(t, err)

	var c models.Card
	cli.JSONData(t, output, &c)
	assert.Equal(t, "New", c.Title)
	assert.Equal(t, models.PriorityHigh, c.Priority)
	assert.NotNil(t, c.DueDate)
	assert.Equal(t, "New", engine.Snapshot().CardsOn(boardID)[0].Title, "cached board is refreshed")

	output, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{id, "--clear-due", "--json"})
	require.NoError(t, err)
	c = models.Card{}
	cli.JSONData(t, output, &c)
	assert.Nil(t, c.DueDate)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{id})
	assert.Equal(t, slotaskcli.ExitUsage, slotaskcli.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{id, "--title", " "})
	assert.Equal(t, slotaskcli.ExitValidation, slotaskcli.ExitCode(err))
}

func TestTagCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "P")
	boardID := cli.CreateTestBoard(t, db, projectID, "Todo")
	id := strconv.Itoa(cli.CreateTestCard(t, db, boardID, "x"))

	output, err := cli.ExecuteCLICommand(t, app, TagCmd(), []string{id, "bug", "--json"})
	require.NoError(t, err)
	var c models.Card
	cli.JSONData(t, output, &c)
	assert.Equal(t, []string{"bug"}, c.Tags)

	// Tags are case-sensitive
	_, err = cli.ExecuteCLICommand(t, app, TagCmd(), []string{id, "Bug"})
	require.NoError(t, err)

	output, err = cli.ExecuteCLICommand(t, app, TagCmd(), []string{id, "bug", "--json"})
	assert.Equal(t, slotaskcli.ExitDataErr, slotaskcli.ExitCode(err))
	assert.Equal(t, "CONFLICT", cli.JSONErrorCode(t, output))

	_, err = cli.ExecuteCLICommand(t, app, UntagCmd(), []string{id, "bug"})
	require.NoError(t, err)

	_, err = cli.ExecuteCLICommand(t, app, UntagCmd(), []string{id, "bug"})
	assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
}

func TestCommentCard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "P")
	boardID := cli.CreateTestBoard(t, db, projectID, "Todo")
	id := strconv.Itoa(cli.CreateTestCard(t, db, boardID, "x"))

	output, err := cli.ExecuteCLICommand(t, app, CommentCmd(), []string{id, "--message", "hello", "--quiet"})
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\n$`, output)

	_, err = cli.ExecuteCLICommand(t, app, CommentCmd(), []string{id, "--message", "   "})
	assert.Equal(t, slotaskcli.ExitValidation, slotaskcli.ExitCode(err))
}
