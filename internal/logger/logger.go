// Package logger writes structured JSON logs for ukato to a file under the
// XDG state directory. Logs never go to the terminal, which belongs to the
// editor while a note is open.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvStateHome overrides the base state directory.
const EnvStateHome = "XDG_STATE_HOME"

var (
	mu      sync.Mutex
	current *slog.Logger
	file    io.Closer
)

// FilePath returns the log file location: $XDG_STATE_HOME/ukato/ukato.log,
// falling back to ~/.local/state when the variable is unset.
func FilePath() (string, error) {
	stateDir := os.Getenv(EnvStateHome)
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "ukato", "ukato.log"), nil
}

// Init opens the log file for appending and installs a JSON logger writing
// to it. debug lowers the level from info to debug. On failure the previous
// logger stays in place and the error is returned for the caller to report.
func Init(debug bool) error {
	path, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	current = New(f, debug)
	return nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Set replaces the active logger. Passing nil restores the discard logger.
func Set(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// L returns the active logger, or one that discards everything if Init was
// never called.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return slog.New(slog.DiscardHandler)
	}
	return current
}

// Close flushes and closes the log file opened by Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	current = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
