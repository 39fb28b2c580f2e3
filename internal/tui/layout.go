package tui

import (
	"math"

	"github.com/ensigniasec/arrange/internal/geometry"
)

// layout maps terminal cells to canvas pixels. It is recomputed from the
// window and canvas size on every use so a resize never leaves stale
// geometry behind.
type layout struct {
	cols, rows int
	scaleX     float64 // canvas pixels per cell
	scaleY     float64

	// screen position of canvas cell (0,0)
	canvasX, canvasY int

	listX, listTop, listRows int
}

func newLayout(width, height int, canvas geometry.Size) layout {
	cols := defaultCanvasW
	if width > 0 {
		cols = width*canvasShare/100 - 2*panelBorder
	}
	if cols < minCanvasCols {
		cols = minCanvasCols
	}

	rows := minCanvasRows
	if canvas.Width > 0 {
		rows = int(math.Round(float64(cols) * canvas.Height / canvas.Width * cellAspect))
	}
	if height > 0 {
		if avail := height - headerLines - footerLines - 2*panelBorder; rows > avail {
			rows = avail
		}
	}
	rows = max(minCanvasRows, min(rows, maxCanvasRows))

	l := layout{
		cols:    cols,
		rows:    rows,
		scaleX:  canvas.Width / float64(cols),
		scaleY:  canvas.Height / float64(rows),
		canvasX: panelBorder,
		canvasY: headerLines + panelBorder,
		listX:   cols + 2*panelBorder + panelGap,
		// one line for the sequence title
		listTop:  headerLines + 1,
		listRows: defaultListRows,
	}
	if height > 0 {
		l.listRows = max(1, height-l.listTop-footerLines)
	}
	return l
}

// inCanvas reports whether screen cell (x, y) lies inside the canvas grid.
func (l layout) inCanvas(x, y int) bool {
	cx, cy := x-l.canvasX, y-l.canvasY
	return cx >= 0 && cy >= 0 && cx < l.cols && cy < l.rows
}

// toCanvas converts a screen cell to the canvas pixel at the cell's center.
func (l layout) toCanvas(x, y int) geometry.Point {
	return geometry.Point{
		X: (float64(x-l.canvasX) + 0.5) * l.scaleX,
		Y: (float64(y-l.canvasY) + 0.5) * l.scaleY,
	}
}

// cellSpan returns the first and last cells covered by [start, start+length)
// on an axis with the given scale and cell count.
func cellSpan(start, length, scale float64, cells int) (int, int) {
	if scale <= 0 {
		return 0, 0
	}
	first := int(math.Floor(start / scale))
	last := int(math.Ceil((start+length)/scale)) - 1
	if last < first {
		last = first
	}
	first = max(0, min(first, cells-1))
	last = max(0, min(last, cells-1))
	return first, last
}

// listRow returns the visible list row under screen row y, or -1.
func (l layout) listRow(x, y int) int {
	if x < l.listX {
		return -1
	}
	row := y - l.listTop
	if row < 0 || row >= l.listRows {
		return -1
	}
	return row
}
