// Package tui provides the Bubble Tea front end for drawille: an animated
// demo viewer, a demo picker, a gallery browser and an SSH server hosting
// them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the running demo by one step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one
// interval of the given rate. Rates below 1 are treated as 1.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
