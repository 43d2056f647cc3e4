package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestInput_PrefilledValue(t *testing.T) {
	m := press(NewInput("Notes directory", "~/notes"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(InputModel).Value(); got != "~/notes" {
		t.Errorf("Value() = %q, want %q", got, "~/notes")
	}
}

func TestInput_TypingAppends(t *testing.T) {
	m := press(NewInput("Notes directory", "~/notes"),
		typeText("/work"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got := m.(InputModel).Value(); got != "~/notes/work" {
		t.Errorf("Value() = %q, want %q", got, "~/notes/work")
	}
}

func TestInput_Abort(t *testing.T) {
	m := press(NewInput("Notes directory", ""), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(InputModel).Aborted() {
		t.Error("esc should abort")
	}
}
