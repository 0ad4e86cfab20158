// Package tui provides the Bubble Tea integration for slither.
// It handles the terminal UI loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg drives one fixed simulation step.
type SimTickMsg time.Time

// FrameTickMsg triggers a display redraw from the latest snapshot.
// Simulation and render rates are independent clocks: lowering the
// frame rate never slows the game down, and vice versa.
type FrameTickMsg time.Time

// simTickCmd schedules the next simulation tick.
func simTickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SimTickMsg(t)
	})
}

// frameTickCmd schedules the next render frame.
func frameTickCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}
