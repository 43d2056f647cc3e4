package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/notes"
	"github.com/Midas1080/ukato/internal/output"
	"github.com/Midas1080/ukato/internal/templates"
)

// newCreateCmd creates the create command.
func newCreateCmd() *cobra.Command {
	var templateName string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a note from a template and open it",
		Long: `Create a note in the notes directory and open it in the editor.

The .md extension is added when missing. A new note starts from the
template given with --template, or from templates/basic.md. In the
template, _TITLE_ becomes "# <name>" and _CREATION_DATE_ becomes today's
date. An existing note is opened as it is.

Examples:
  ukato create groceries
  ukato create standup --template meeting
  ukato create work/retro`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], templateName)
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "", "Template to start from (default basic)")

	return cmd
}

func runCreate(cmd *cobra.Command, name, templateName string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	path, err := notes.Resolve(cfg.Directory, name)
	if err != nil {
		exitErr := output.NewUserErrorWithCause("invalid note name", err)
		printer.Error(exitErr)
		return exitErr
	}

	content, res, err := templates.Prepare(cfg.TemplatesDir(), templateName, notes.TitleFor(name), time.Now())
	if errors.Is(err, templates.ErrInvalidName) {
		exitErr := output.NewUserErrorWithCause("invalid template name", err)
		printer.Error(exitErr)
		return exitErr
	}
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to read template", err)
		printer.Error(exitErr)
		return exitErr
	}

	// an existing note is opened as is, so the template does not matter
	isNew := !fileExists(path)
	if isNew && res.FellBack && !printer.IsJSON() {
		printer.Warn("%s", describeFallback(res.Requested, res.Name))
	}

	announce(printer, path)
	result, err := openNote(cmd, printer, cfg, path, content)
	if err != nil {
		return err
	}
	if result.Created {
		result.Template = res.Name
		result.TemplateFallback = res.FellBack
	}
	return report(printer, result)
}
