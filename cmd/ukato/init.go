package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/config"
	"github.com/Midas1080/ukato/internal/logger"
	"github.com/Midas1080/ukato/internal/output"
	"github.com/Midas1080/ukato/internal/pathutil"
	"github.com/Midas1080/ukato/internal/templates"
	"github.com/Midas1080/ukato/internal/tui"
)

// editorChoices are offered by the init wizard.
var editorChoices = []string{"vim", "nano", "emacs", "micro"}

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	directory string
	editor    string
	viewer    string
	yes       bool
}

// initStepResult tracks the result of a single initialization step.
type initStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed"
	Message string `json:"message,omitempty"`
}

// initStyleSet holds lipgloss styles for init output.
type initStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// initStyles returns a TTY-aware style set.
func initStyles(isTTY bool) initStyleSet {
	if !isTTY {
		return initStyleSet{}
	}
	return initStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Choose the notes directory and editor",
		Long: `Set up ukato.

This command:
  - Asks for the notes directory (default ~/notes) and creates it
  - Creates the templates/ directory and adds the starter templates
  - Asks for the editor and saves the configuration

Values given as flags are not asked for. With --yes, or when not attached
to a terminal, the current values are kept for anything not given.
Running init again keeps existing notes and templates.

Examples:
  ukato init
  ukato init --yes
  ukato init --directory ~/notes --editor "code --wait" --viewer ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.directory, "directory", "d", "", "Notes directory")
	cmd.Flags().StringVarP(&flags.editor, "editor", "e", "", "Editor command, arguments allowed")
	cmd.Flags().StringVar(&flags.viewer, "viewer", "", `Markdown viewer command ("" disables it)`)
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept current values, no prompts")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, flags *initFlags) error {
	printer := newPrinter(cmd)
	styles := initStyles(useColor(cmd))
	dir := config.Dir()

	current, _, err := config.LoadStored(dir)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to load config", err)
		printer.Error(exitErr)
		return exitErr
	}

	cfg, err := gatherInitValues(cmd, printer, flags, current)
	if errors.Is(err, tui.ErrAborted) {
		printer.Status("Cancelled, nothing was changed")
		return nil
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	if !printer.IsJSON() {
		printer.Println()
		printer.Print("%s %s...\n", styles.heading.Render("Setting up notes in"), styles.dim.Render(cfg.Directory))
		printer.Println()
	}

	steps, installed, err := executeInitSteps(printer, styles, dir, cfg)
	if err != nil {
		return err
	}
	logger.L().Info("initialized", "directory", cfg.Directory, "editor", cfg.Editor, "viewer", cfg.Viewer)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":              "ok",
			"config_file":         config.FilePath(dir),
			"directory":           cfg.Directory,
			"editor":              cfg.Editor,
			"viewer":              cfg.Viewer,
			"templates_installed": installed,
			"steps":               steps,
		})
	}

	printNextSteps(printer, styles)
	return nil
}

// gatherInitValues merges flags, prompts and current values. Interactive
// prompts are used only for values not given as flags, and only on a terminal.
func gatherInitValues(cmd *cobra.Command, printer *output.Printer, flags *initFlags, current config.Config) (config.Config, error) {
	cfg := current
	interactive := !flags.yes && !printer.IsJSON() && tui.IsTerminal(cmd.InOrStdin(), cmd.OutOrStdout())

	switch {
	case cmd.Flags().Changed("directory"):
		cfg.Directory = flags.directory
	case interactive:
		value, err := tui.Input(cmd.InOrStdin(), cmd.OutOrStdout(), "Where should your notes live?", current.Directory)
		if err != nil {
			return cfg, err
		}
		if value != "" {
			cfg.Directory = value
		}
	}

	switch {
	case cmd.Flags().Changed("editor"):
		cfg.Editor = strings.TrimSpace(flags.editor)
	case interactive:
		choices := editorOptions(current.Editor)
		idx, err := tui.Select(cmd.InOrStdin(), cmd.OutOrStdout(), "Which editor should open your notes?", choices, "")
		if err != nil {
			return cfg, err
		}
		cfg.Editor = choices[idx]
	}
	if cfg.Editor == "" {
		return cfg, output.NewUserError("editor must not be empty")
	}

	if cmd.Flags().Changed("viewer") {
		cfg.Viewer = strings.TrimSpace(flags.viewer)
	}

	expanded, err := pathutil.Expand(strings.TrimSpace(cfg.Directory))
	if err != nil {
		return cfg, output.NewUserErrorWithCause("invalid notes directory", err)
	}
	if expanded == "" {
		return cfg, output.NewUserError("notes directory must not be empty")
	}
	cfg.Directory = expanded
	return cfg, nil
}

// editorOptions puts the current editor first so enter keeps it.
func editorOptions(current string) []string {
	options := slices.Clone(editorChoices)
	if i := slices.Index(options, current); i >= 0 {
		options = slices.Delete(options, i, i+1)
	}
	if current != "" {
		options = slices.Insert(options, 0, current)
	}
	return options
}

// executeInitSteps creates the directories, installs the starter templates
// and writes the config. It stops at the first failed step.
func executeInitSteps(printer *output.Printer, styles initStyleSet, dir string, cfg config.Config) ([]initStepResult, []string, error) {
	var steps []initStepResult
	record := func(step initStepResult) {
		steps = append(steps, step)
		if !printer.IsJSON() {
			printStepResult(printer, styles, step)
		}
	}
	fail := func(name, message string, err error) error {
		record(initStepResult{Name: name, Status: "failed", Message: err.Error()})
		exitErr := output.NewSystemErrorWithCause(message, err)
		printer.Error(exitErr)
		return exitErr
	}

	existed := fileExists(cfg.Directory)
	if err := pathutil.EnsureDirAll(cfg.Directory); err != nil {
		return steps, nil, fail("directory", "failed to create notes directory", err)
	}
	record(createdStep("directory", cfg.Directory, existed))

	if err := pathutil.EnsureDirAll(cfg.TemplatesDir()); err != nil {
		return steps, nil, fail("templates", "failed to create templates directory", err)
	}
	installed, err := templates.Install(cfg.TemplatesDir())
	if err != nil {
		return steps, installed, fail("templates", "failed to install starter templates", err)
	}
	if len(installed) == 0 {
		record(initStepResult{Name: "templates", Status: "skipped", Message: "starter templates already present"})
	} else {
		record(initStepResult{Name: "templates", Status: "ok", Message: "added " + strings.Join(installed, ", ")})
	}

	if err := config.Save(dir, cfg); err != nil {
		return steps, installed, fail("config", "failed to write config", err)
	}
	record(initStepResult{Name: "config", Status: "ok", Message: config.FilePath(dir)})

	return steps, installed, nil
}

func createdStep(name, path string, existed bool) initStepResult {
	if existed {
		return initStepResult{Name: name, Status: "skipped", Message: path + " already exists"}
	}
	return initStepResult{Name: name, Status: "ok", Message: "created " + path}
}

// printStepResult prints a single step result in human format.
func printStepResult(printer *output.Printer, styles initStyleSet, step initStepResult) {
	icon := styledStepIcon(styles, step.Status)
	printer.Print("  %s %s", icon, formatStepName(step.Name))
	if step.Message != "" {
		printer.Print(" %s", styles.dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles initStyleSet, status string) string {
	switch status {
	case "ok":
		return styles.pass.Render("ok")
	case "skipped":
		return styles.skip.Render("--")
	case "failed":
		return styles.fail.Render("XX")
	default:
		return "??"
	}
}

// formatStepName converts step names to display names.
func formatStepName(name string) string {
	switch name {
	case "directory":
		return "Notes directory"
	case "templates":
		return "Templates"
	case "config":
		return "Config file"
	default:
		return name
	}
}

// printNextSteps outputs the next steps message.
func printNextSteps(printer *output.Printer, styles initStyleSet) {
	printer.Println()
	printer.Print("%s\n", styles.heading.Render(styles.pass.Render("ukato is ready!")))
	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.dim.Render("Write your first note:"))
	printer.Print("     %s\n", styles.accent.Render("ukato create todo"))
	printer.Println()
	printer.Print("  2. %s\n", styles.dim.Render("Shape a template of your own:"))
	printer.Print("     %s\n", styles.accent.Render("ukato template weekly"))
	printer.Println()
	printer.Print("  3. %s\n", styles.dim.Render("Come back to it later:"))
	printer.Print("     %s\n", styles.accent.Render(fmt.Sprintf("ukato recent  %s  ukato list", styles.dim.Render("or"))))
}
