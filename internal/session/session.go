// Package session opens a note: it writes the initial content of new notes,
// keeps an optional markdown viewer running beside the editor, and tears the
// viewer down once the editor returns.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoEditor is returned when the editor command is blank.
var ErrNoEditor = errors.New("no editor configured")

// EditorExitError reports an editor that exited with a non-zero status or
// was stopped by a signal.
type EditorExitError struct {
	// Code is the exit status, or -1 when the editor was killed by a signal.
	Code int
	// State is the process state as reported by the OS, e.g. "signal: killed".
	State string
}

func (e *EditorExitError) Error() string {
	if e.Code < 0 && e.State != "" {
		return "editor stopped by " + e.State
	}
	return fmt.Sprintf("editor exited with status %d", e.Code)
}

// CommandFunc builds a child process. It matches exec.CommandContext.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Launcher runs the editor and viewer for a note.
type Launcher struct {
	// Editor and Viewer are command lines split on whitespace; the note
	// path is appended as the final argument. An empty Viewer disables it.
	Editor string
	Viewer string

	// Terminal streams handed to the editor.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger  *slog.Logger
	Command CommandFunc
}

// Result describes what Open did.
type Result struct {
	Path          string `json:"path"`
	Created       bool   `json:"created"`
	ViewerStarted bool   `json:"viewer_started"`
}

// Open writes contentIfNew to path when no file exists there yet, starts the
// viewer if one is configured, and blocks until the editor exits. The viewer
// is killed and reaped on every return path.
func (l *Launcher) Open(ctx context.Context, path, contentIfNew string) (Result, error) {
	result := Result{Path: path}

	editor := strings.Fields(l.Editor)
	if len(editor) == 0 {
		return result, ErrNoEditor
	}

	created, err := WriteIfNew(path, contentIfNew)
	if err != nil {
		return result, err
	}
	result.Created = created
	l.logger().Debug("note prepared", "path", path, "created", created)

	viewer := l.startViewer(ctx, path)
	defer stopViewer(viewer)
	result.ViewerStarted = viewer != nil

	cmd := l.command(ctx, editor[0], append(editor[1:], path)...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	l.logger().Info("editor started", "editor", editor[0], "path", path)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			state := exitErr.ProcessState.String()
			l.logger().Warn("editor failed", "editor", editor[0], "code", exitErr.ExitCode(), "state", state)
			return result, &EditorExitError{Code: exitErr.ExitCode(), State: state}
		}
		return result, fmt.Errorf("running editor %q: %w", editor[0], err)
	}
	l.logger().Info("editor exited", "editor", editor[0], "path", path)
	return result, nil
}

// WriteIfNew creates path with content unless a file already exists there.
// Missing parent directories are created. It reports whether it wrote.
func WriteIfNew(path, content string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// startViewer returns nil when no viewer is configured or it fails to start.
func (l *Launcher) startViewer(ctx context.Context, path string) *exec.Cmd {
	viewer := strings.Fields(l.Viewer)
	if len(viewer) == 0 {
		return nil
	}

	cmd := l.command(ctx, viewer[0], append(viewer[1:], path)...)
	if err := cmd.Start(); err != nil {
		l.logger().Warn("viewer failed to start", "viewer", viewer[0], "error", err)
		return nil
	}
	l.logger().Debug("viewer started", "viewer", viewer[0], "pid", cmd.Process.Pid)
	return cmd
}

func stopViewer(cmd *exec.Cmd) {
	if cmd == nil {
		return
	}
	_ = cmd.Process.Kill()
	_ = cmd.Wait()
}

func (l *Launcher) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	if l.Command != nil {
		return l.Command(ctx, name, args...)
	}
	return exec.CommandContext(ctx, name, args...)
}

func (l *Launcher) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}
