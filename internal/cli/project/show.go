package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	"github.com/thenoetrevino/slotask/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its boards and cards",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type projectView struct {
	Project *models.Project `json:"project"`
	Board   board.Snapshot  `json:"board"`
}

func runShow(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	projectID, err := cli.ParseID(args[0], "project")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask project list' to see available projects")
	}

	p, err := c.App.ProjectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	engine, err := c.App.OpenBoard(ctx, projectID)
	if err != nil {
		return nil, err
	}
	snap := engine.Snapshot()

	return cli.Item{
		Value: projectView{Project: p, Board: snap},
		ID:    p.ID,
		Text:  styles.RenderBoard(p.Name, snap),
	}, nil
}
