package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/core"
	_ "github.com/vovakirdan/tile-arcade/internal/games/platformer"
	_ "github.com/vovakirdan/tile-arcade/internal/games/snake"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return nm, cmd
}

func TestMenuListsGames(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	view := m.View()
	for _, want := range []string{"Platformer", "Snake", "coins"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view is missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	// Games are sorted by ID: platformer, snake.
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("selecting a game should end the menu")
	}
	if sel := m.Selected(); sel == nil || sel.GameID != "snake" {
		t.Errorf("Selected() = %+v, want snake", sel)
	}
}

func TestMenuScoreboardAndResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}
	if m.IsQuitting() {
		t.Error("opening the scoreboard is not quitting")
	}
}
