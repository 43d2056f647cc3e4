package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/config"
	"github.com/Midas1080/ukato/internal/notes"
	"github.com/Midas1080/ukato/internal/output"
	"github.com/Midas1080/ukato/internal/pathutil"
	"github.com/Midas1080/ukato/internal/tui"
)

// listKind describes one of the two listings.
type listKind struct {
	noun   string
	filter notes.Filter
	dir    func(config.Config) string
}

var (
	noteListing = listKind{
		noun:   "notes",
		filter: notes.FilterNotes,
		dir:    func(cfg config.Config) string { return cfg.Directory },
	}
	templateListing = listKind{
		noun:   "templates",
		filter: notes.FilterTemplates,
		dir:    config.Config.TemplatesDir,
	}
)

// listFlags holds the command-line flags shared by the list commands.
type listFlags struct {
	print bool
}

// listEntry is the printed form of a listed file.
type listEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Modified string `json:"modified"`
	Title    string `json:"title,omitempty"`
	IsDir    bool   `json:"is_dir,omitempty"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"list-notes", "ls"},
		Short:   "Pick a note and open it",
		Long: `List the notes in the notes directory and open the one you pick.

An optional query fuzzy-filters note names, best match first. Use --print
or --json to print the notes instead of opening one.

Examples:
  ukato list
  ukato list groc
  ukato list --print`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, noteListing, queryArg(args), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.print, "print", "p", false, "Print the notes instead of opening one")

	return cmd
}

// newListTemplatesCmd creates the list-templates command.
func newListTemplatesCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list-templates [query]",
		Short: "Pick a template and edit it",
		Long: `List the templates and open the one you pick in the editor.

An optional query fuzzy-filters template names. Use --print or --json to
print the templates instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, templateListing, queryArg(args), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.print, "print", "p", false, "Print the templates instead of opening one")

	return cmd
}

func queryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runList(cmd *cobra.Command, kind listKind, query string, flags *listFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	dir := kind.dir(cfg)
	if err := pathutil.EnsureDirAll(dir); err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to prepare "+kind.noun+" directory", err)
		printer.Error(exitErr)
		return exitErr
	}

	all, err := notes.List(dir, kind.filter)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to list "+kind.noun, err)
		printer.Error(exitErr)
		return exitErr
	}

	matched := notes.FuzzyFilter(all, query)
	if len(matched) == 0 {
		exitErr := output.NewUserError("no " + kind.noun + " found")
		printer.Error(exitErr)
		return exitErr
	}

	if flags.print || printer.IsJSON() {
		return printEntries(printer, kind, matched)
	}

	entry, err := pick(cmd, kind, all, query)
	if errors.Is(err, tui.ErrAborted) {
		printer.Status("Cancelled")
		return nil
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	if entry.IsDir {
		exitErr := output.NewUserError(entry.Name + " is a directory")
		printer.Error(exitErr)
		return exitErr
	}

	announce(printer, entry.Path)
	result, err := openNote(cmd, printer, cfg, entry.Path, "")
	if err != nil {
		return err
	}
	return report(printer, result)
}

// pick shows the selection menu over entries, starting filtered by query.
func pick(cmd *cobra.Command, kind listKind, entries []notes.Entry, query string) (notes.Entry, error) {
	if !tui.IsTerminal(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return notes.Entry{}, output.NewUserErrorWithCause(
			"choosing from "+kind.noun+" needs a terminal; use --print to list them", tui.ErrNoTerminal)
	}

	idx, err := tui.Select(cmd.InOrStdin(), cmd.OutOrStdout(), "Open which of your "+kind.noun+"?", notes.Names(entries), query)
	if errors.Is(err, tui.ErrAborted) {
		return notes.Entry{}, err
	}
	if err != nil {
		return notes.Entry{}, output.NewSystemErrorWithCause("selection failed", err)
	}
	return entries[idx], nil
}

func printEntries(printer *output.Printer, kind listKind, entries []notes.Entry) error {
	listed := make([]listEntry, 0, len(entries))
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		item := listEntry{
			Name:     entry.Name,
			Path:     entry.Path,
			Modified: entry.ModTime.Format(time.RFC3339),
			IsDir:    entry.IsDir,
		}
		name := entry.Name
		if entry.IsDir {
			name += "/"
		} else {
			item.Title = notes.Title(entry.Path)
		}
		listed = append(listed, item)
		rows = append(rows, []string{name, entry.ModTime.Local().Format("2006-01-02 15:04"), item.Title})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":   len(listed),
			kind.noun: listed,
		})
	}

	printer.Table([]string{"NAME", "MODIFIED", "TITLE"}, rows)
	return nil
}
