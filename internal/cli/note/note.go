// Package note holds the cli commands for project notes
//
// e.g., slotask note ...
package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	noteservice "github.com/thenoetrevino/slotask/internal/services/note"
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage a project's notes",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// CreateCmd returns the note create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a note to a project",
		RunE:  handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Note title (required)")
	cli.MarkRequired(cmd, "title")
	cmd.Flags().String("content", "", "Note body")

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")

	n, err := c.App.NoteService.CreateNote(ctx, noteservice.CreateNoteRequest{
		ProjectID: projectID,
		Title:     title,
		Content:   content,
	})
	if err != nil {
		return nil, err
	}
	return cli.Item{Value: n, ID: n.ID, Text: styles.Success("Note '%s' created (ID: %d)", n.Title, n.ID)}, nil
}

// ListCmd returns the note list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's notes",
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

	notes, err := c.App.NoteService.ListNotes(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(notes))
	var b strings.Builder
	for i, n := range notes {
		ids[i] = n.ID
		fmt.Fprintf(&b, "%s\n", styles.TitleStyle.Render(fmt.Sprintf("#%d %s", n.ID, n.Title)))
		if n.Content != "" {
			fmt.Fprintf(&b, "%s\n", n.Content)
		}
	}
	text := strings.TrimRight(b.String(), "\n")
	if len(notes) == 0 {
		text = "No notes"
	}
	return cli.List{Values: notes, IDList: ids, Text: text}, nil
}

// UpdateCmd returns the note update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <note-id>",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runUpdate),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("content", "", "New body")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	noteID, err := cli.ParseID(args[0], "note")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask note list' to see note IDs")
	}

	req := noteservice.UpdateNoteRequest{ID: noteID}
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		req.Title = &v
	}
	if cmd.Flags().Changed("content") {
		v, _ := cmd.Flags().GetString("content")
		req.Content = &v
	}
	if req.Title == nil && req.Content == nil {
		return nil, cli.Usage(errors.New("nothing to update"), "Pass --title and/or --content")
	}

	n, err := c.App.NoteService.UpdateNote(ctx, req)
	if err != nil {
		return nil, err
	}
	return cli.Item{Value: n, ID: n.ID, Text: styles.Success("Note %d updated", n.ID)}, nil
}

// DeleteCmd returns the note delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runDelete),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	noteID, err := cli.ParseID(args[0], "note")
	if err != nil {
		return nil, cli.Usage(err, "Use 'slotask note list' to see note IDs")
	}

	if err := c.App.NoteService.DeleteNote(ctx, noteID); err != nil {
		return nil, err
	}
	return cli.Item{
		Value: map[string]int{"id": noteID},
		ID:    noteID,
		Text:  styles.Success("Note %d deleted", noteID),
	}, nil
}
