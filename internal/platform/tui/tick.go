// Package tui is the Bubble Tea presentation layer for the snake game.
// It maps keys to engine input, drives the movement and clock cadences and
// paints engine snapshots onto a cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MoveMsg asks the model to advance the snake by one cell.
type MoveMsg struct {
	gen int
}

// ClockMsg asks the model to add one second to the play timer.
type ClockMsg struct {
	gen int
}

// moveCmd schedules the next movement tick after delayMs milliseconds.
// The generation tags the message so ticks from an abandoned run are dropped.
func moveCmd(gen, delayMs int) tea.Cmd {
	interval := time.Duration(delayMs) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return MoveMsg{gen: gen}
	})
}

// clockCmd schedules the next one-second timer increment.
func clockCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return ClockMsg{gen: gen}
	})
}
