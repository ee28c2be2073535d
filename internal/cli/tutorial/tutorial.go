// Package tutorial prints the getting-started guide
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a short guide to projects, boards and cards",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			raw, _ := cmd.Flags().GetBool("raw")
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), tutorialContent)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.RenderMarkdown(tutorialContent, styles.CardWidth))
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source")
	return cmd
}
