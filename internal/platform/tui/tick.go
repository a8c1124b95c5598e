// Package tui provides the Bubble Tea front end: the game loop, the start
// menu, the replay browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent at fixed intervals to drive the simulation.
// Loop identifies the game model that scheduled it, so a tick left over
// from a finished game never drives the next one.
type TickMsg struct {
	Loop int64
	Time time.Time
}

// tickCmd returns a command that sends a TickMsg after one tick interval.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
