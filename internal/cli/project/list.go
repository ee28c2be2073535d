package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE:  handler.Command(runList),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *cobra.Command, _ []string) (any, error) {
	projects, err := c.App.ProjectService.GetAllProjects(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(projects))
	var b strings.Builder
	if len(projects) == 0 {
		b.WriteString("No projects found")
	}
	for i, p := range projects {
		ids[i] = p.ID
		fmt.Fprintf(&b, "%s %s\n", styles.ColoredText(fmt.Sprintf("#%d", p.ID), p.Color), p.Name)
	}

	return cli.List{
		Values: projects,
		IDList: ids,
		Text:   strings.TrimRight(b.String(), "\n"),
	}, nil
}
