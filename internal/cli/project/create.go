package project

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	projectservice "github.com/thenoetrevino/slotask/internal/services/project"
	"github.com/thenoetrevino/slotask/internal/user"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project. A project starts without boards.

Examples:
  # Simple project (human-readable output)
  slotask project create --name="Backend API"

  # JSON output for agents
  slotask project create --name="Backend API" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(slotask project create --name="Backend API" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("name", "", "Project name (required)")
	cli.MarkRequired(cmd, "name")

	cmd.Flags().String("color", "", "Hex color, e.g. #7D56F4")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("owner", "", "Owner (defaults to the current user)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
	description, _ := cmd.Flags().GetString("description")
	owner, _ := cmd.Flags().GetString("owner")
	if owner == "" {
		owner = user.GetCurrentUsername()
	}

	p, err := c.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:        name,
		Color:       color,
		Description: description,
		OwnerID:     owner,
	})
	if err != nil {
		return nil, err
	}

	text := styles.Success("Project '%s' created (ID: %d)", p.Name, p.ID)
	if p.Description != "" {
		text += fmt.Sprintf("\n  Description: %s", p.Description)
	}
	return cli.Item{Value: p, ID: p.ID, Text: text}, nil
}
