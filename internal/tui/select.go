package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// maxVisible caps how many options the menu draws at once.
const maxVisible = 10

// SelectModel is a single-choice menu filtered as the user types.
type SelectModel struct {
	title    string
	options  []string
	query    textinput.Model
	filtered []int
	cursor   int
	chosen   int
	aborted  bool
}

// NewSelect builds a menu over options with an optional initial filter.
func NewSelect(title string, options []string, query string) SelectModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.SetValue(query)
	ti.Focus()

	m := SelectModel{
		title:   title,
		options: options,
		query:   ti,
		chosen:  -1,
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m SelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.chosen = m.filtered[m.cursor]
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *SelectModel) applyFilter() {
	query := m.query.Value()
	if query == "" {
		m.filtered = make([]int, len(m.options))
		for i := range m.options {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.options)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// View implements tea.Model.
func (m SelectModel) View() string {
	if m.chosen >= 0 || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.query.View() + "\n")

	if len(m.filtered) == 0 {
		b.WriteString(hintStyle.Render("  no matches") + "\n")
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(len(m.filtered), start+maxVisible)
	for i := start; i < end; i++ {
		option := m.options[m.filtered[i]]
		if i == m.cursor {
			fmt.Fprintf(&b, "%s %s\n", cursorStyle.Render(">"), selectedStyle.Render(option))
		} else {
			fmt.Fprintf(&b, "  %s\n", option)
		}
	}

	b.WriteString(hintStyle.Render("↑/↓ move  enter select  esc cancel"))
	return b.String()
}

// Chosen returns the index into the original options of the selection.
func (m SelectModel) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Aborted reports whether the user cancelled the menu.
func (m SelectModel) Aborted() bool {
	return m.aborted
}

// Visible returns the options currently shown, in display order.
func (m SelectModel) Visible() []string {
	visible := make([]string, len(m.filtered))
	for i, idx := range m.filtered {
		visible[i] = m.options[idx]
	}
	return visible
}

// Select runs the menu on the given streams and returns the index of the
// chosen option.
func Select(in io.Reader, out io.Writer, title string, options []string, query string) (int, error) {
	model := NewSelect(title, options, query)
	final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return -1, fmt.Errorf("running select menu: %w", err)
	}

	result, ok := final.(SelectModel)
	if !ok || result.Aborted() {
		return -1, ErrAborted
	}
	idx, ok := result.Chosen()
	if !ok {
		return -1, ErrAborted
	}
	return idx, nil
}
