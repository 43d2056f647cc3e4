package main

import (
	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/notes"
	"github.com/Midas1080/ukato/internal/output"
	"github.com/Midas1080/ukato/internal/pathutil"
	"github.com/Midas1080/ukato/internal/templates"
)

// newTemplateCmd creates the template command.
func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template <name>",
		Short: "Create or edit a template",
		Long: `Open templates/<name>.md in the editor.

A new template starts from the basic skeleton. Templates may use the
placeholders _TITLE_ and _CREATION_DATE_, which are filled in when a note
is created from them.

Examples:
  ukato template weekly
  ukato create plan --template weekly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(cmd, args[0])
		},
	}
}

func runTemplate(cmd *cobra.Command, name string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	if err := pathutil.EnsureDirAll(cfg.TemplatesDir()); err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to prepare templates directory", err)
		printer.Error(exitErr)
		return exitErr
	}

	path, err := notes.Resolve(cfg.TemplatesDir(), name)
	if err != nil {
		exitErr := output.NewUserErrorWithCause("invalid template name", err)
		printer.Error(exitErr)
		return exitErr
	}

	announce(printer, path)
	result, err := openNote(cmd, printer, cfg, path, templates.Skeleton())
	if err != nil {
		return err
	}
	return report(printer, result)
}
