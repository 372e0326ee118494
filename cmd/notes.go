package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/errors"
)

// notesCmd represents the notes command.
var notesCmd = &cobra.Command{
	Use:     "notes",
	Aliases: []string{"note", "n"},
	Short:   "Read and write the notes pad",
	Long: `Show or replace the free-form notes pad. Pass "-" to read text from stdin.

Examples:
  stardeck notes
  stardeck notes set "Call mission control"
  stardeck notes append "Pack the telescope"
  echo "draft" | stardeck notes set -
  stardeck notes clear`,
	RunE: runNotesShow,
}

// notesShowCmd prints the notes.
var notesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the notes pad",
	Args:  cobra.NoArgs,
	RunE:  runNotesShow,
}

// notesSetCmd replaces the notes.
var notesSetCmd = &cobra.Command{
	Use:   "set TEXT...",
	Short: "Replace the notes pad",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesSet,
}

// notesAppendCmd appends a line.
var notesAppendCmd = &cobra.Command{
	Use:   "append TEXT...",
	Short: "Append a line to the notes pad",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesAppend,
}

// notesClearCmd empties the notes.
var notesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the notes pad",
	Args:  cobra.NoArgs,
	RunE:  runNotesClear,
}

func init() {
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesSetCmd)
	notesCmd.AddCommand(notesAppendCmd)
	notesCmd.AddCommand(notesClearCmd)
	rootCmd.AddCommand(notesCmd)
}

func runNotesShow(cmd *cobra.Command, args []string) error {
	notes, err := ctx.Notes.Load()
	if err != nil {
		return err
	}
	return printNotes(notes)
}

func runNotesSet(cmd *cobra.Command, args []string) error {
	text, err := notesText(cmd, args)
	if err != nil {
		return err
	}
	return saveNotes(action.NotesSave, text, "Notes saved")
}

func runNotesAppend(cmd *cobra.Command, args []string) error {
	text, err := notesText(cmd, args)
	if err != nil {
		return err
	}
	return saveNotes(action.NotesAppend, text, "Notes updated")
}

func runNotesClear(cmd *cobra.Command, args []string) error {
	return saveNotes(action.NotesSave, "", "Notes cleared")
}

// notesText joins args, or reads stdin when the only arg is "-".
func notesText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read notes from stdin")
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

func saveNotes(name, text, success string) error {
	snap, err := ctx.Dispatcher.Dispatch(name, action.Args{action.ArgText: text})
	if err != nil {
		return err
	}
	if ctx.IsCLI() {
		ctx.CLIFormatter().Success(success)
	}
	return printNotes(snap.Notes)
}

func printNotes(notes string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintNotes(notes)
	}
	ctx.CLIFormatter().PrintNotes(notes)
	return nil
}
