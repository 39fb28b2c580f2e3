package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/arrange/internal/gesture"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(x.Width, x.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tea.MouseMsg:
		return m.handleMouse(x)

	case tea.BlurMsg:
		// Losing focus is treated exactly like pointer-up.
		m.apply(gesture.Event{Kind: gesture.Blur})
		m.syncListItems()
		return m, nil

	case clearStatusMsg:
		if x.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}
