// Package link holds the cli commands for a project's link repository
//
// e.g., slotask link ...
package link

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	linkservice "github.com/thenoetrevino/slotask/internal/services/link"
)

// LinkCmd returns the link parent command
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage a project's links",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// CreateCmd returns the link create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <url>",
		Short: "Save a link to a project",
		Long: `Save a link. Without --title the link is named after its host.

Examples:
  slotask link create https://github.com/acme/api --title="API repo"
  slotask link create docs.example.com/guide
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Link title")
	cmd.Flags().String("description", "", "What the link is for")

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	projectID, err := cli.ProjectFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	l, err := c.App.LinkService.CreateLink(ctx, linkservice.CreateLinkRequest{
		ProjectID:   projectID,
		Title:       title,
		URL:         args[0],
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	return cli.Item{Value: l, ID: l.ID, Text: styles.Success("Saved %s (ID: %d)", l.URL, l.ID)}, nil
}

// ListCmd returns the link list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's links",
		RunE:  handler.Command(runList),
	}
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	links, err := c.App.LinkService.ListLinks(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(links))
	lines := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.ID
		lines[i] = fmt.Sprintf("#%d %s %s", l.ID, styles.TitleStyle.Render(l.Title), styles.SubtitleStyle.Render(l.URL))
	}
	text := strings.Join(lines, "\n")
	if len(links) == 0 {
		text = "No links"
	}
	return cli.List{Values: links, IDList: ids, Text: text}, nil
}

// DeleteCmd returns the link delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <link-id>",
		Short: "Delete a link",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runDelete),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	linkID, err := cli.ParseID(args[0], "link")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask link list' to see link IDs")
	}

	if err := c.App.LinkService.DeleteLink(ctx, linkID); err != nil {
		return nil, err
	}
	return cli.Item{
		Value: map[string]int{"id": linkID},
		ID:    linkID,
		Text:  styles.Success("Link %d deleted", linkID),
	}, nil
}
