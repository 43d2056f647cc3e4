package main

import (
	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/config"
	"github.com/Midas1080/ukato/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show where the configuration lives and the values in effect.

Values come from config.yaml, overridden by the env file next to it and
then by the UKATO_DIRECTORY, UKATO_EDITOR and UKATO_VIEWER environment
variables.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	dir := config.Dir()
	cfg, initialized, err := config.LoadOrDefault(dir)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause("failed to load config", err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"config_file": config.FilePath(dir),
			"env_file":    config.EnvFilePath(dir),
			"initialized": initialized,
			"directory":   cfg.Directory,
			"templates":   cfg.TemplatesDir(),
			"editor":      cfg.Editor,
			"viewer":      cfg.Viewer,
		})
	}

	printer.KeyValue("config file", config.FilePath(dir))
	printer.KeyValue("directory", cfg.Directory)
	printer.KeyValue("templates", cfg.TemplatesDir())
	printer.KeyValue("editor", cfg.Editor)
	viewer := cfg.Viewer
	if viewer == "" {
		viewer = printer.Styles().Dim.Render("(disabled)")
	}
	printer.KeyValue("viewer", viewer)
	if !initialized {
		printer.Warn("not initialized yet; run 'ukato init' to save these values")
	}
	return nil
}
