package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, log.New(io.Discard), core.DefaultConfig())

	// Menu -> scoreboard -> menu.
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil || m.quitting {
		t.Fatal("Esc should return to the menu")
	}

	// Menu -> game. Selecting must not end the session.
	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("Enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule its first tick")
	}
	if m.quitting {
		t.Error("selecting a game ended the session")
	}

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.config.ScreenW != 90 || m.config.ScreenH != 30 {
		t.Errorf("session config = %dx%d, want 90x30", m.config.ScreenW, m.config.ScreenH)
	}

	m, cmd = updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in a game should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
