package use

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Set project context for current shell session",
		Long: `Set the current project context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(slotask use project 3)              # Use project 3
  eval $(slotask use project --clear)        # Clear project context
  slotask use project --show                 # Show current project

The SLOTASK_PROJECT environment variable will be set in your current shell
session only. The --project flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseProject,
	}

	cmd.Flags().Bool("clear", false, "Clear the current project context")
	cmd.Flags().Bool("show", false, "Show the current project context")

	return cmd
}

func runUseProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	formatter := &cli.OutputFormatter{Out: out, ErrOut: errOut}

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")

	if clearFlag {
		fmt.Fprintf(out, "unset %s\n", cli.EnvProject)
		fmt.Fprintln(errOut, "Cleared project context")
		return nil
	}

	if showFlag {
		current := os.Getenv(cli.EnvProject)
		if current == "" {
			fmt.Fprintln(out, "No project context set")
			fmt.Fprintln(out, "Use 'eval $(slotask use project <project-id>)' to set one")
			return nil
		}
		args = []string{current}
	}

	if len(args) == 0 {
		return formatter.FailUsage(fmt.Errorf("project ID required"), "eval $(slotask use project <project-id>)")
	}
	projectID, err := cli.ParseID(args[0], "project")
	if err != nil {
		return formatter.FailUsage(err, "Use 'slotask project list' to see available projects")
	}

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = c.Close() }()

	project, err := c.App.ProjectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	if showFlag {
		fmt.Fprintf(out, "Current project: %d (%s)\n", projectID, project.Name)
		return nil
	}

	// stdout is evaluated by the shell; everything else goes to stderr
	fmt.Fprintf(out, "export %s=%d\n", cli.EnvProject, projectID)
	fmt.Fprintf(errOut, "Now using project %d: %s\n", projectID, project.Name)
	return nil
}
