// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and the game clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen identifies the clock
// generation that scheduled it: pausing, resuming, or restarting bumps the
// model's generation, so a tick scheduled before the change arrives stale
// and is dropped. This is the "cancel + reschedule" policy - there is no
// live timer to mutate, only messages to invalidate.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules a single tick after the given interval. The clock is
// re-armed after each tick with the engine's current interval, so a speed
// change takes effect immediately on the next arm.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
