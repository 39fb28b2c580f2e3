package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/arrange/internal/scene"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	l := m.layout()
	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(renderCanvas(m, l))

	right := lipgloss.NewStyle().MarginLeft(panelGap).Render(renderSequencePanel(m))

	var b strings.Builder
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n\n")
	if m.helpVisible {
		b.WriteString(renderHelp(m))
	} else {
		b.WriteString(renderFooter(m))
	}
	return b.String()
}

func renderHeader(m Model) string {
	s := m.Scene()
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Render("arrange")
	name := s.Name
	if name == "" {
		name = "untitled"
	}
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf(" %s • canvas %gx%g", name, s.Canvas.Width, s.Canvas.Height))

	line := title + subtitle
	if m.status != "" {
		status := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status)
		pad := m.width - lipgloss.Width(line) - lipgloss.Width(status)
		if pad < 1 {
			pad = 1
		}
		line += strings.Repeat(" ", pad) + status
	}
	return line
}

// renderCanvas draws overlays onto a character grid. Later overlays are drawn
// above earlier ones, matching hit-testing order.
func renderCanvas(m Model, l layout) string {
	grid := make([][]rune, l.rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat("·", l.cols))
	}

	dragging := m.dispatcher.Dragging()
	for _, o := range m.Scene().Overlays {
		fill := '▒'
		if o.Kind == scene.ImageOverlay {
			fill = '░'
		}
		if o.ID == dragging {
			fill = '▓'
		}
		x0, x1 := cellSpan(o.Position.X, o.Size.Width, l.scaleX, l.cols)
		y0, y1 := cellSpan(o.Position.Y, o.Size.Height, l.scaleY, l.rows)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				grid[y][x] = fill
			}
		}
		label := []rune(o.Label)
		if len(label) == 0 {
			label = []rune(o.ID)
		}
		for i, r := range label {
			if x0+i > x1 {
				break
			}
			grid[y0][x0+i] = r
		}
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func renderSequencePanel(m Model) string {
	seqs := m.Scene().Sequences
	if len(seqs) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("No sequences in this scene.")
	}
	seq := seqs[m.sequence]
	title := lipgloss.NewStyle().Bold(true).Render(seq.Name)
	counter := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("  (%d/%d, %d items)", m.sequence+1, len(seqs), len(seq.Items)))
	return title + counter + "\n" + m.list.View()
}

func renderFooter(m Model) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(
		"drag overlays on the canvas • drag rows to reorder • " + m.help.View(m.keys),
	)
}

func renderHelp(m Model) string {
	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Foreground(lipgloss.Color("69"))
	content := []string{
		"Help",
		"",
		"mouse: drag an overlay inside the canvas; leaving the canvas drops it",
		"mouse: drag a row onto another row to move it there",
		m.help.View(m.keys),
	}
	return border.Render(strings.Join(content, "\n"))
}
