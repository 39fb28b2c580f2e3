package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/arrange/internal/gesture"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.apply(gesture.Event{Kind: gesture.Blur})
		m.syncListItems()
		return m, nil

	case key.Matches(msg, m.keys.NextSequence):
		if n := len(m.Scene().Sequences); n > 0 {
			m.apply(gesture.Event{Kind: gesture.DragEnd})
			m.sequence = (m.sequence + 1) % n
			m.list.Select(0)
			m.syncListItems()
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m.nudgeSelected(gesture.KeyUp)

	case key.Matches(msg, m.keys.MoveDown):
		return m.nudgeSelected(gesture.KeyDown)

	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil
	}

	return m, nil
}

// nudgeSelected moves the selected item one step and keeps it selected.
func (m Model) nudgeSelected(kind gesture.Kind) (Model, tea.Cmd) {
	seq := m.currentSequence()
	row, ok := m.list.SelectedItem().(itemRow)
	if seq == nil || !ok {
		return m, nil
	}
	if !m.apply(gesture.Event{Kind: kind, Sequence: seq.Name, Item: row.ID}) {
		return m, nil
	}
	m.syncListItems()
	m.list.Select(m.indexOf(row.ID))
	return m, m.setStatus(fmt.Sprintf("moved %s to position %d", row.Label, m.indexOf(row.ID)+1))
}

// handleMouse turns terminal mouse events into canvas pointer events or list
// drag events depending on where the gesture started.
//
//nolint:gocognit,cyclop // Press/motion/release for two surfaces.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	l := m.layout()
	seq := m.currentSequence()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if l.inCanvas(msg.X, msg.Y) {
			p := l.toCanvas(msg.X, msg.Y)
			if i := m.Scene().OverlayAt(p); i >= 0 {
				m.apply(gesture.Event{Kind: gesture.PointerDown, Target: m.Scene().Overlays[i].ID, X: p.X, Y: p.Y})
			}
			return m, nil
		}
		if id := m.itemAt(l, msg.X, msg.Y); id != "" && seq != nil {
			m.apply(gesture.Event{Kind: gesture.DragStart, Sequence: seq.Name, Item: id})
			m.list.Select(m.indexOf(id))
			m.syncListItems()
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.dispatcher.Dragging() != "" {
			if !l.inCanvas(msg.X, msg.Y) {
				m.apply(gesture.Event{Kind: gesture.PointerLeave})
				return m, nil
			}
			p := l.toCanvas(msg.X, msg.Y)
			m.apply(gesture.Event{Kind: gesture.PointerMove, X: p.X, Y: p.Y})
			return m, nil
		}
		if name, _ := m.dispatcher.Reordering(); name != "" {
			if id := m.itemAt(l, msg.X, msg.Y); id != "" {
				m.apply(gesture.Event{Kind: gesture.DragOver, Sequence: name, Item: id})
				m.syncListItems()
			}
		}
		return m, nil

	case tea.MouseActionRelease:
		if dragged := m.dispatcher.Dragging(); dragged != "" {
			m.apply(gesture.Event{Kind: gesture.PointerUp})
			if i := m.Scene().Overlay(dragged); i >= 0 {
				pos := m.Scene().Overlays[i].Position
				return m, m.setStatus(fmt.Sprintf("%s at (%.0f, %.0f)", dragged, pos.X, pos.Y))
			}
			return m, nil
		}
		name, dragged := m.dispatcher.Reordering()
		if name == "" {
			return m, nil
		}
		var cmd tea.Cmd
		if id := m.itemAt(l, msg.X, msg.Y); id != "" {
			if m.apply(gesture.Event{Kind: gesture.Drop, Sequence: name, Item: id}) {
				cmd = m.setStatus(fmt.Sprintf("moved %s to position %d", dragged, m.indexOf(dragged)+1))
			}
		}
		m.apply(gesture.Event{Kind: gesture.DragEnd, Sequence: name})
		m.syncListItems()
		m.list.Select(m.indexOf(dragged))
		return m, cmd
	}

	return m, nil
}

// apply forwards ev to the dispatcher and reports whether the scene changed.
func (m *Model) apply(ev gesture.Event) bool {
	changed, err := m.dispatcher.Apply(ev)
	if err != nil {
		logrus.Debugf("tui: %v", err)
		return false
	}
	return changed
}

// itemAt returns the id of the list item under screen cell (x, y), or "".
func (m Model) itemAt(l layout, x, y int) string {
	row := l.listRow(x, y)
	if row < 0 {
		return ""
	}
	idx := m.list.Paginator.Page*m.list.Paginator.PerPage + row
	items := m.list.Items()
	if idx < 0 || idx >= len(items) {
		return ""
	}
	it, ok := items[idx].(itemRow)
	if !ok {
		return ""
	}
	return it.ID
}

func (m Model) indexOf(id string) int {
	for i, it := range m.list.Items() {
		if row, ok := it.(itemRow); ok && row.ID == id {
			return i
		}
	}
	return 0
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	return clearStatusAfter(m.statusSeq)
}

// syncListItems rebuilds the list items from the current sequence.
func (m *Model) syncListItems() {
	seq := m.currentSequence()
	if seq == nil {
		m.list.SetItems(nil)
		return
	}
	_, dragged := m.dispatcher.Reordering()
	hover := m.dispatcher.Hover()
	items := make([]list.Item, 0, len(seq.Items))
	for _, it := range seq.Items {
		row := newItemRow(it)
		row.Dragged = it.ID == dragged
		row.Hovered = it.ID == hover && !row.Dragged
		items = append(items, row)
	}
	m.list.SetItems(items)
}
