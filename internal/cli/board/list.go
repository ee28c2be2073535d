package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/models"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's boards left to right",
		RunE:  handler.Command(runList),
	}
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

type boardRow struct {
	models.Board
	CardCount int `json:"card_count"`
}

func runList(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	engine, err := c.App.OpenBoard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	snap := engine.Snapshot()

	rows := make([]boardRow, len(snap.Boards))
	ids := make([]int, len(snap.Boards))
	var b strings.Builder
	for i, bd := range snap.Boards {
		rows[i] = boardRow{Board: bd, CardCount: len(snap.CardsOn(bd.ID))}
		ids[i] = bd.ID
		fmt.Fprintf(&b, "%d. %s (#%d, %d cards)\n", bd.Position, bd.Name, bd.ID, rows[i].CardCount)
	}
	text := strings.TrimRight(b.String(), "\n")
	if len(rows) == 0 {
		text = "No boards yet"
	}

	return cli.List{Values: rows, IDList: ids, Text: text}, nil
}
