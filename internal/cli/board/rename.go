package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <board-id>",
		Short: "Rename a board",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runRename),
	}

	cmd.Flags().String("name", "", "New board name (required)")
	cli.MarkRequired(cmd, "name")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	boardID, err := cli.ParseID(args[0], "board")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask board list' to see board IDs")
	}
	name, _ := cmd.Flags().GetString("name")

	engine, err := c.App.BoardEngine(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := engine.RenameBoard(ctx, boardID, name); err != nil {
		return nil, err
	}

	snap := engine.Snapshot()
	b := snap.Boards[snap.BoardIndex(boardID)]
	return cli.Item{Value: b, ID: b.ID, Text: styles.Success("Board %d renamed to '%s'", b.ID, b.Name)}, nil
}
