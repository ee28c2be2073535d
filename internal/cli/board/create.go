package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a new board to a project",
		Long: `Append a new board to the right of a project's existing boards.

Examples:
  slotask board create --project=1 --name="In Review"
  BOARD_ID=$(slotask board create --name="Todo" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Board name (required)")
	cli.MarkRequired(cmd, "name")

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	name, _ := cmd.Flags().GetString("name")

	engine, err := c.App.OpenBoard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	b, err := engine.CreateBoard(ctx, name)
	if err != nil {
		return nil, err
	}

	return cli.Item{
		Value: b,
		ID:    b.ID,
		Text:  styles.Success("Board '%s' created (ID: %d, position %d)", b.Name, b.ID, b.Position),
	}, nil
}
