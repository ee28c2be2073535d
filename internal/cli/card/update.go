package card

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	"github.com/thenoetrevino/slotask/internal/models"
	cardservice "github.com/thenoetrevino/slotask/internal/services/card"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <card-id>",
		Short: "Edit a card's title, description, priority or due date",
		Long: `Edit a card's fields. Only the flags you pass are changed; use
'slotask card move' to change where the card sits.

Examples:
  slotask card update 7 --title="Fix login on Safari"
  slotask card update 7 --priority=high --due=2025-04-01
  slotask card update 7 --clear-due
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("priority", "", "New priority: low, medium, high, urgent")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	cardID, err := parseCardID(args[0])
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	req := cardservice.UpdateCardRequest{CardID: cardID}
	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		req.Title = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		req.Description = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		req.Priority = &v
	}
	if flags.Changed("due") {
		v, _ := flags.GetString("due")
		due, err := cli.ParseDueDate(v)
		if err != nil {
			return nil, err
		}
		req.DueDate = due
	}
	req.ClearDueDate, _ = flags.GetBool("clear-due")

	if req.Title == nil && req.Description == nil && req.Priority == nil && req.DueDate == nil && !req.ClearDueDate {
		return nil, cli.Usage(errors.New("nothing to update"),
			"Pass at least one of --title, --description, --priority, --due, --clear-due")
	}

	card, err := c.App.CardService.UpdateCard(ctx, req)
	if err != nil {
		return nil, err
	}
	refreshAfterEdit(ctx, c, card)

	return cli.Item{Value: card, ID: card.ID, Text: styles.Success("Card %d updated", card.ID)}, nil
}

// refreshAfterEdit keeps an engine cached in this process in step with a
// field edit made through the card service.
func refreshAfterEdit(ctx context.Context, c *cli.CLI, card *models.Card) {
	if err := c.App.RefreshBoard(ctx, card.BoardID); err != nil {
		slog.Warn("failed to refresh board after card edit", "error", err, "card_id", card.ID)
	}
}
