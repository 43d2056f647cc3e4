package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/notes"
	"github.com/Midas1080/ukato/internal/output"
)

// newRecentCmd creates the recent command.
func newRecentCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Open the most recently modified note",
		Long: `Open the most recently modified file in the notes directory.

Only files count; the templates directory and other subdirectories are
skipped. When two files share the latest modification time, the one whose
name sorts last wins. Use --print or --json to show the file instead of
opening it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecent(cmd, printOnly)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the note instead of opening it")

	return cmd
}

func runRecent(cmd *cobra.Command, printOnly bool) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	entry, err := notes.MostRecent(cfg.Directory)
	if errors.Is(err, notes.ErrNoFiles) {
		exitErr := output.NewUserError("no notes found in " + cfg.Directory)
		printer.Error(exitErr)
		return exitErr
	}
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to find the most recent note", err)
		printer.Error(exitErr)
		return exitErr
	}

	if printOnly || printer.IsJSON() {
		return printEntries(printer, noteListing, []notes.Entry{entry})
	}

	announce(printer, entry.Path)
	result, err := openNote(cmd, printer, cfg, entry.Path, "")
	if err != nil {
		return err
	}
	return report(printer, result)
}
