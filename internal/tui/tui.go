// Package tui holds the interactive prompts used by ukato: a text input
// for the init wizard and a fuzzy select menu for picking notes.
package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Midas1080/ukato/internal/output"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// ErrNoTerminal is returned when a prompt is requested without a terminal.
var ErrNoTerminal = errors.New("interactive prompt needs a terminal")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// IsTerminal reports whether both streams are attached to a terminal.
func IsTerminal(in io.Reader, out io.Writer) bool {
	return output.IsTerminal(in) && output.IsTTY(out)
}
