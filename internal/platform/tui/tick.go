// Package tui provides the Bubble Tea shell for the runner.
// It maps keys to intents, paces ticks at the game's current interval and
// renders the game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after interval. The interval is read
// from the game every tick because it shrinks as the run speeds up.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
