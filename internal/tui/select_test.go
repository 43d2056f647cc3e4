package tui

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, key := range keys {
		m, _ = m.Update(key)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var options = []string{"daily.md", "meeting.md", "todo.md"}

func TestSelect_EnterPicksFirst(t *testing.T) {
	m := press(NewSelect("Notes", options, ""), tea.KeyMsg{Type: tea.KeyEnter})
	idx, ok := m.(SelectModel).Chosen()
	if !ok || idx != 0 {
		t.Errorf("Chosen() = %d, %v; want 0, true", idx, ok)
	}
}

func TestSelect_CursorMovement(t *testing.T) {
	m := press(NewSelect("Notes", options, ""),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, // clamped at the last option
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	idx, ok := m.(SelectModel).Chosen()
	if !ok || idx != 1 {
		t.Errorf("Chosen() = %d, %v; want 1, true", idx, ok)
	}
}

func TestSelect_TypingFilters(t *testing.T) {
	m := press(NewSelect("Notes", options, ""), typeText("todo"))
	if got := m.(SelectModel).Visible(); !slices.Equal(got, []string{"todo.md"}) {
		t.Fatalf("Visible() = %v, want [todo.md]", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	idx, ok := m.(SelectModel).Chosen()
	if !ok || idx != 2 {
		t.Errorf("Chosen() = %d, %v; want index of todo.md in the full list", idx, ok)
	}
}

func TestSelect_InitialQuery(t *testing.T) {
	m := NewSelect("Notes", options, "mtg")
	if got := m.Visible(); !slices.Equal(got, []string{"meeting.md"}) {
		t.Errorf("Visible() = %v, want [meeting.md]", got)
	}
}

func TestSelect_EnterWithNoMatchesIgnored(t *testing.T) {
	m := press(NewSelect("Notes", options, "zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.(SelectModel).Chosen(); ok {
		t.Error("enter with no matches should not select anything")
	}
}

func TestSelect_Abort(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := press(NewSelect("Notes", options, ""), key)
		if !m.(SelectModel).Aborted() {
			t.Errorf("%s should abort", key)
		}
		if _, ok := m.(SelectModel).Chosen(); ok {
			t.Errorf("%s should not select", key)
		}
	}
}

func TestSelect_View(t *testing.T) {
	view := NewSelect("Pick a note", options, "").View()
	for _, want := range []string{"Pick a note", "daily.md", "meeting.md", "todo.md"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestIsTerminal_Buffers(t *testing.T) {
	if IsTerminal(strings.NewReader(""), &bytes.Buffer{}) {
		t.Error("buffers are not terminals")
	}
}
