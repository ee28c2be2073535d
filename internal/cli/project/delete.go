package project

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project with all of its boards, cards, notes and links",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runDelete),
	}

	cmd.Flags().Bool("force", false, "Confirm deletion")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	projectID, err := cli.ParseID(args[0], "project")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask project list' to see available projects")
	}
	if force, _ := cmd.Flags().GetBool("force"); !force {
		return nil, cli.Usage(errors.New("deleting a project cannot be undone"), "Re-run with --force")
	}

	if err := c.App.ProjectService.DeleteProject(ctx, projectID); err != nil {
		return nil, err
	}

	return cli.Item{
		Value: map[string]int{"id": projectID},
		ID:    projectID,
		Text:  styles.Success("Project %d deleted", projectID),
	}, nil
}
