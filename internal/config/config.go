package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Midas1080/ukato/internal/envfile"
	"github.com/Midas1080/ukato/internal/pathutil"
)

// Default values written by init when the user accepts the defaults.
const (
	DefaultDirectory = "~/notes"
	DefaultEditor    = "vim"
	DefaultViewer    = "inlyne"
)

// Environment variables that override config.yaml. The same keys are read
// from the env file in the config directory, with the process environment
// taking precedence.
const (
	EnvDirectory = "UKATO_DIRECTORY"
	EnvEditor    = "UKATO_EDITOR"
	EnvViewer    = "UKATO_VIEWER"
)

// TemplatesDirName is the subdirectory of the notes directory holding templates.
const TemplatesDirName = "templates"

// ErrNotInitialized is returned by Load when no config file exists.
var ErrNotInitialized = errors.New("ukato is not initialized")

// Config is the persisted user configuration.
type Config struct {
	// Directory is the notes root. Stored expanded by init.
	Directory string `yaml:"directory"`

	// Editor is the command used to edit notes, optionally with arguments.
	Editor string `yaml:"editor"`

	// Viewer is the markdown preview command run alongside the editor.
	// Empty disables the viewer.
	Viewer string `yaml:"viewer"`
}

// Default returns the configuration used before init has run.
func Default() Config {
	return Config{
		Directory: DefaultDirectory,
		Editor:    DefaultEditor,
		Viewer:    DefaultViewer,
	}
}

// TemplatesDir returns the templates directory under the notes root.
func (c Config) TemplatesDir() string {
	return filepath.Join(c.Directory, TemplatesDirName)
}

// Load reads config.yaml from dir and applies overrides from the env file
// and the process environment. Keys missing from the file keep their
// defaults. Returns ErrNotInitialized if the file does not exist.
func Load(dir string) (Config, error) {
	cfg, err := readFile(FilePath(dir))
	if err != nil {
		return Config{}, err
	}
	return finish(dir, cfg)
}

// LoadOrDefault is like Load but falls back to Default when the config file
// does not exist yet. The boolean reports whether the file was found.
func LoadOrDefault(dir string) (Config, bool, error) {
	cfg, err := readFile(FilePath(dir))
	if errors.Is(err, ErrNotInitialized) {
		cfg, err = finish(dir, Default())
		return cfg, false, err
	}
	if err != nil {
		return Config{}, false, err
	}
	cfg, err = finish(dir, cfg)
	return cfg, true, err
}

// LoadStored returns the values saved in config.yaml without any overrides
// and with the directory as written, falling back to Default when the file
// does not exist yet. The boolean reports whether the file was found. It is
// the starting point for rewriting the file, so overrides are never saved.
func LoadStored(dir string) (Config, bool, error) {
	cfg, err := readFile(FilePath(dir))
	if errors.Is(err, ErrNotInitialized) {
		return Default(), false, nil
	}
	if err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Save writes cfg to config.yaml in dir, creating dir if needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := FilePath(dir)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, ErrNotInitialized
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// finish layers overrides on top of cfg and expands the directory.
func finish(dir string, cfg Config) (Config, error) {
	fileVars, err := envfile.Read(EnvFilePath(dir))
	if err != nil {
		return Config{}, err
	}

	// An empty value only counts for the viewer, where it disables preview.
	override := func(key string, target *string, allowEmpty bool) {
		value, ok := os.LookupEnv(key)
		if !ok {
			value, ok = fileVars[key]
		}
		if ok && (value != "" || allowEmpty) {
			*target = value
		}
	}
	override(EnvDirectory, &cfg.Directory, false)
	override(EnvEditor, &cfg.Editor, false)
	override(EnvViewer, &cfg.Viewer, true)

	expanded, err := pathutil.Expand(cfg.Directory)
	if err != nil {
		return Config{}, err
	}
	cfg.Directory = expanded

	if cfg.Editor == "" {
		cfg.Editor = DefaultEditor
	}
	return cfg, nil
}
