package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for Bubble Tea update loop.

// clearStatusMsg clears the status line if it still shows the message set
// at the given sequence number.
type clearStatusMsg struct{ seq int }

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
