package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel asks for a single line of text.
type InputModel struct {
	title   string
	input   textinput.Model
	done    bool
	aborted bool
}

// NewInput builds a text prompt pre-filled with value.
func NewInput(title, value string) InputModel {
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = 60
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return InputModel{title: title, input: ti}
}

// Init implements tea.Model.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m InputModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" +
		m.input.View() + "\n" +
		hintStyle.Render("enter confirm  esc cancel")
}

// Value returns the trimmed input.
func (m InputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Aborted reports whether the user cancelled the prompt.
func (m InputModel) Aborted() bool {
	return m.aborted
}

// Input runs a text prompt on the given streams.
func Input(in io.Reader, out io.Writer, title, value string) (string, error) {
	final, err := tea.NewProgram(NewInput(title, value), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", fmt.Errorf("running text prompt: %w", err)
	}

	result, ok := final.(InputModel)
	if !ok || result.Aborted() {
		return "", ErrAborted
	}
	return result.Value(), nil
}
