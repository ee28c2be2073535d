package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	cardservice "github.com/thenoetrevino/slotask/internal/services/card"
)

// CommentCmd returns the card comment subcommand
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <card-id>",
		Short: "Comment on a card",
		Long: `Add a comment to a card.

Examples:
  slotask card comment 7 --message="Blocked on the API review"
  slotask card comment 7 --message="LGTM" --author=sam
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runComment),
	}

	cmd.Flags().String("message", "", "Comment text (required)")
	cli.MarkRequired(cmd, "message")
	cmd.Flags().String("author", "", "Author (defaults to the current user)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runComment(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	cardID, err := parseCardID(args[0])
	if err != nil {
		return nil, err
	}
	message, _ := cmd.Flags().GetString("message")
	author, _ := cmd.Flags().GetString("author")

	comment, err := c.App.CardService.AddComment(ctx, cardservice.CreateCommentRequest{
		CardID:  cardID,
		Author:  author,
		Content: message,
	})
	if err != nil {
		return nil, err
	}

	return cli.Item{
		Value: comment,
		ID:    comment.ID,
		Text:  styles.Success("Comment added to card %d", cardID),
	}, nil
}
