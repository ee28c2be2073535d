package project

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	projectservice "github.com/thenoetrevino/slotask/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project's name, color or description",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runUpdate),
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New hex color")
	cmd.Flags().String("description", "", "New description")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	projectID, err := cli.ParseID(args[0], "project")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask project list' to see available projects")
	}

	req := projectservice.UpdateProjectRequest{ID: projectID}
	flags := cmd.Flags()
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		req.Name = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		req.Color = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		req.Description = &v
	}
	if req.Name == nil && req.Color == nil && req.Description == nil {
		return nil, cli.Usage(errors.New("nothing to update"), "Pass at least one of --name, --color, --description")
	}

	if err := c.App.ProjectService.UpdateProject(ctx, req); err != nil {
		return nil, err
	}

	p, err := c.App.ProjectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return cli.Item{Value: p, ID: p.ID, Text: styles.Success("Project %d updated", p.ID)}, nil
}
