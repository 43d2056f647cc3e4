package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/config"
	"github.com/Midas1080/ukato/internal/logger"
	"github.com/Midas1080/ukato/internal/output"
	"github.com/Midas1080/ukato/internal/pathutil"
	"github.com/Midas1080/ukato/internal/session"
)

// loadConfig reads the configuration and makes sure the notes directory
// exists. Errors are printed before being returned.
func loadConfig(printer *output.Printer) (config.Config, error) {
	cfg, err := config.Load(config.Dir())
	if errors.Is(err, config.ErrNotInitialized) {
		exitErr := output.NewUserError("ukato is not initialized. Run 'ukato init' first")
		printer.Error(exitErr)
		return config.Config{}, exitErr
	}
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to load config", err)
		printer.Error(exitErr)
		return config.Config{}, exitErr
	}

	if err := pathutil.EnsureDir(cfg.Directory); err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to prepare notes directory", err)
		printer.Error(exitErr)
		return config.Config{}, exitErr
	}
	logger.L().Debug("config loaded", "directory", cfg.Directory, "editor", cfg.Editor, "viewer", cfg.Viewer)
	return cfg, nil
}

// openResult is what every opening command reports.
type openResult struct {
	Path             string
	Created          bool
	ViewerStarted    bool
	Template         string
	TemplateFallback bool
}

// openNote hands path to the editor, writing content first if the file is
// new, and reports the outcome.
func openNote(cmd *cobra.Command, printer *output.Printer, cfg config.Config, path, content string) (*openResult, error) {
	launcher := &session.Launcher{
		Editor: cfg.Editor,
		Viewer: cfg.Viewer,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger.L(),
	}
	// the editor owns stdout in human mode
	if printer.IsJSON() {
		launcher.Stdout = cmd.ErrOrStderr()
	}

	result, err := launcher.Open(cmd.Context(), path, content)
	if err != nil {
		exitErr := editorError(err)
		printer.Error(exitErr)
		return nil, exitErr
	}
	return &openResult{
		Path:          result.Path,
		Created:       result.Created,
		ViewerStarted: result.ViewerStarted,
	}, nil
}

func editorError(err error) *output.ExitError {
	var exitErr *session.EditorExitError
	if errors.As(err, &exitErr) {
		return output.NewEditorError(exitErr.Error(), err)
	}
	if errors.Is(err, session.ErrNoEditor) {
		return output.NewUserErrorWithCause("no editor configured. Set one with 'ukato init'", err)
	}
	return output.NewSystemErrorWithCause("failed to open note", err)
}

// report prints the outcome of an open in JSON mode. Human mode already
// announced the note before the editor started.
func report(printer *output.Printer, res *openResult) error {
	if printer.IsJSON() {
		data := map[string]any{
			"status":         "ok",
			"path":           res.Path,
			"created":        res.Created,
			"viewer_started": res.ViewerStarted,
		}
		if res.Template != "" {
			data["template"] = res.Template
			data["template_fallback"] = res.TemplateFallback
		}
		return printer.Success(data)
	}
	return nil
}

// announce tells the user whether path is new before the editor takes over.
func announce(printer *output.Printer, path string) {
	if fileExists(path) {
		printer.Status("Opening existing note %s", path)
		return
	}
	printer.Status("Creating %s", path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func describeFallback(requested, used string) string {
	return fmt.Sprintf("template %q not found, using %q", requested, used)
}
