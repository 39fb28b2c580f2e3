package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/arrange/internal/scene"
)

// itemRow is the list item backing one sequence entry.
type itemRow struct {
	ID       string
	Label    string
	Priority int
	Dragged  bool
	Hovered  bool
}

// List item interface methods.
func (it itemRow) Title() string       { return it.Label }
func (it itemRow) Description() string { return "" }
func (it itemRow) FilterValue() string { return it.ID + " " + it.Label }

func newItemRow(it scene.Item) itemRow {
	label := it.Label
	if label == "" {
		label = it.ID
	}
	return itemRow{ID: it.ID, Label: label, Priority: it.Priority}
}

// sequenceDelegate renders rows with a drag marker and right-justified
// priority.
type sequenceDelegate struct{}

func (d sequenceDelegate) Height() int                             { return 1 }
func (d sequenceDelegate) Spacing() int                            { return 0 }
func (d sequenceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d sequenceDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(itemRow)
	if !ok {
		return
	}
	prefix := "  "
	lineStyle := lipgloss.NewStyle()
	switch {
	case it.Dragged:
		prefix = "≡ "
		lineStyle = lineStyle.Foreground(lipgloss.Color("208")).Bold(true)
	case it.Hovered:
		prefix = "↳ "
		lineStyle = lineStyle.Foreground(lipgloss.Color("46"))
	case index == m.Index():
		prefix = "> "
		lineStyle = lineStyle.Foreground(lipgloss.Color("69")).Bold(true)
	}

	left := fmt.Sprintf("%s%02d. %s", prefix, index+1, it.Label)
	right := ""
	if it.Priority > 0 {
		right = fmt.Sprintf("p%d", it.Priority)
	}

	padding := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	line := left + spaces(padding) + right
	_, _ = fmt.Fprint(w, lineStyle.Render(line))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(n).Render("")
}
