package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/repo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/validate"
)

// noteCmd represents the note command.
var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"notes", "n"},
	Short:   "Manage notes",
	Long: `List, add, edit and delete notes.

Examples:
  skillhub note
  skillhub note add "Meeting notes" --content "discussed the roadmap"
  skillhub note edit <id> --title "New title"
  skillhub note favorite <id>
  skillhub note delete <id>`,
	RunE: runNoteList,
}

// Note subcommand flags.
var (
	noteAddFlagContent  string
	noteEditFlagTitle   string
	noteEditFlagContent string
)

var noteAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteAdd,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

var noteDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteDelete,
}

var noteFavoriteCmd = &cobra.Command{
	Use:     "favorite ID",
	Aliases: []string{"fav"},
	Short:   "Toggle a note's favorite flag",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteFavorite,
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteAddFlagContent, "content", "c", "", "Note content")

	noteEditCmd.Flags().StringVarP(&noteEditFlagTitle, "title", "t", "", "Update title")
	noteEditCmd.Flags().StringVarP(&noteEditFlagContent, "content", "c", "", "Update content")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteFavoriteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteList(cmd *cobra.Command, args []string) error {
	notes := ctx.Repos.Notes.Load()

	if ctx.IsJSON() {
		outputs := make([]output.NoteOutput, len(notes))
		for i, n := range notes {
			outputs[i] = output.NewNoteOutput(n)
		}
		return ctx.Formatter.JSON(output.NotesResponse{Mode: ctx.Session.Mode(), Notes: outputs})
	}

	cli := ctx.CLIFormatter()
	if badge := cli.ModeBadge(ctx.Session.Mode()); badge != "" {
		cli.Println(badge)
	}
	if len(notes) == 0 {
		cli.Muted("No notes yet. Add one with 'skillhub note add'.")
		return nil
	}
	for _, n := range notes {
		star := " "
		if n.Favorite {
			star = "★"
		}
		cli.Printf("%s %s  %s\n", star, cli.RecordTitle(n.Title), n.ID)
		if n.Content != "" {
			cli.Muted("  " + firstLine(n.Content))
		}
	}
	return nil
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(strings.Join(args, " "))
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.Body(noteAddFlagContent); err != nil {
		return err
	}

	note, err := ctx.Repos.Notes.Create(title, noteAddFlagContent)
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}
	ctx.CLIFormatter().Success("added note " + note.ID)
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	patch := repo.NotePatch{}
	if cmd.Flags().Changed("title") {
		title := validate.SanitizeTitle(noteEditFlagTitle)
		if err := validate.Title(title); err != nil {
			return err
		}
		patch.Title = &title
	}
	if cmd.Flags().Changed("content") {
		if err := validate.Body(noteEditFlagContent); err != nil {
			return err
		}
		patch.Content = &noteEditFlagContent
	}

	note, err := ctx.Repos.Notes.Update(args[0], patch)
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}
	ctx.CLIFormatter().Success("updated note " + note.ID)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	if err := warnPersist(ctx.Repos.Notes.Delete(args[0])); err != nil {
		return err
	}
	if !ctx.IsJSON() {
		ctx.CLIFormatter().Success("deleted note " + args[0])
	}
	return nil
}

func runNoteFavorite(cmd *cobra.Command, args []string) error {
	note, err := ctx.Repos.Notes.ToggleFavorite(args[0])
	if err := warnPersist(err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewNoteOutput(note))
	}
	state := "unfavorited"
	if note.Favorite {
		state = "favorited"
	}
	ctx.CLIFormatter().Success(state + " note " + note.ID)
	return nil
}

// firstLine returns the first line of text, truncated for list display.
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	runes := []rune(text)
	if len(runes) > 80 {
		return string(runes[:80]) + "..."
	}
	return text
}
