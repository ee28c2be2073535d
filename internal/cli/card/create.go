package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	"github.com/thenoetrevino/slotask/internal/models"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a card to the bottom of a board",
		Long: `Add a card to the bottom of a board.

Examples:
  slotask card create --board=2 --title="Fix login"
  slotask card create --board=2 --title="Ship v1" --priority=urgent --due=2025-03-31
  CARD_ID=$(slotask card create --board=2 --title="Spike" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().Int("board", 0, "Board ID (required)")
	cmd.Flags().String("title", "", "Card title (required)")
	cli.MarkRequired(cmd, "board", "title")

	cmd.Flags().String("description", "", "Card description")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Priority: low, medium, high, urgent")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	flags := cmd.Flags()
	boardID, _ := flags.GetInt("board")
	title, _ := flags.GetString("title")
	description, _ := flags.GetString("description")
	priority, _ := flags.GetString("priority")
	due, _ := flags.GetString("due")

	p, err := models.ParsePriority(priority)
	if err != nil {
		return nil, board.ErrInvalidPriority
	}
	fields := models.CardFields{
		Title:       title,
		Description: description,
		Priority:    p,
	}
	if due != "" {
		d, err := cli.ParseDueDate(due)
		if err != nil {
			return nil, err
		}
		fields.DueDate = d
	}

	engine, err := c.App.BoardEngine(ctx, boardID)
	if err != nil {
		return nil, err
	}
	card, err := engine.CreateCard(ctx, boardID, fields)
	if err != nil {
		return nil, err
	}

	return cli.Item{
		Value: card,
		ID:    card.ID,
		Text:  styles.Success("Card '%s' created (ID: %d, position %d)", card.Title, card.ID, card.Position),
	}, nil
}
