package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRunsModelBackAndQuitKeys(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if rm, ok := updated.(RunsModel); !ok || !rm.IsGoingBack() {
		t.Error("esc should flag going back")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if rm, ok := updated.(RunsModel); !ok || !rm.IsQuitting() {
		t.Error("q should flag quitting")
	}
}

func TestRunsModelTableHeightClamped(t *testing.T) {
	m := NewRunsModel(nil, 80, 5) // Tiny terminal
	if h := m.table.Height(); h < 3 {
		t.Errorf("table height = %d, expected at least 3", h)
	}
}
