// Package tui runs arcade games in a terminal with Bubble Tea: the game
// loop, key mapping, the menu and scoreboard, and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the running game to advance one simulation step.
type TickMsg time.Time

// tickCmd schedules the next step. Games step at a fixed rate and ignore the
// timestamp, so a late tick only slows play down and never skips physics.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
