// Package tui provides the Bubble Tea integration for stick hero.
// It handles the terminal UI loop, input mapping and the tick scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg asks the model to advance one frame. It carries the epoch the loop
// was started under; a tick from an older epoch is stale and gets dropped.
type tickMsg struct {
	epoch uint64
}

// tickCmd schedules a single tick for the given epoch at the frame rate.
func tickCmd(tickRate int, epoch uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}
