package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	projectservice "github.com/thenoetrevino/slotask/internal/services/project"
)

// InviteCmd returns the project invite subcommand
func InviteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite <project-id>",
		Short: "Invite a collaborator by email",
		Long: `Record an invitation for a collaborator. The printed token is what
the collaborator uses to accept; delivering it is up to you.

Examples:
  slotask project invite 3 --email=sam@example.com
  slotask project invite 3 --email=sam@example.com --role=viewer --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runInvite),
	}

	cmd.Flags().String("email", "", "Collaborator email (required)")
	cli.MarkRequired(cmd, "email")
	cmd.Flags().String("role", "editor", "Role: editor or viewer")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runInvite(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	projectID, err := cli.ParseID(args[0], "project")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask project list' to see available projects")
	}
	email, _ := cmd.Flags().GetString("email")
	role, _ := cmd.Flags().GetString("role")

	inv, err := c.App.ProjectService.InviteCollaborator(ctx, projectservice.InviteRequest{
		ProjectID: projectID,
		Email:     email,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	text := styles.Success("Invited %s as %s", inv.Email, inv.Role) + "\n" + styles.Field("Token", inv.Token)
	return cli.Item{Value: inv, ID: inv.ID, Text: text}, nil
}

// InvitesCmd returns the project invites subcommand
func InvitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invites <project-id>",
		Short: "List a project's invitations",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runInvites),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runInvites(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	projectID, err := cli.ParseID(args[0], "project")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask project list' to see available projects")
	}

	invites, err := c.App.ProjectService.ListInvites(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(invites))
	lines := make([]string, len(invites))
	for i, inv := range invites {
		ids[i] = inv.ID
		lines[i] = fmt.Sprintf("%s (%s)", inv.Email, inv.Role)
	}
	text := strings.Join(lines, "\n")
	if len(invites) == 0 {
		text = "No invitations"
	}
	return cli.List{Values: invites, IDList: ids, Text: text}, nil
}
