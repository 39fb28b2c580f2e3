package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// headerLines is the title line plus one spacer above the panels.
	headerLines = 2
	// footerLines is the spacer plus key hints below the panels.
	footerLines = 2
	// panelBorder is the width of the rounded border around the canvas.
	panelBorder = 1
	panelGap    = 2

	// canvasShare is the percentage of the terminal width given to the canvas.
	canvasShare     = 65
	defaultCanvasW  = 60
	minCanvasCols   = 16
	minCanvasRows   = 4
	maxCanvasRows   = 40
	defaultListRows = 10
	// cellAspect corrects for terminal cells being about twice as tall as wide.
	cellAspect = 0.5

	statusClearSeconds = 3
	statusClearAfter   = time.Duration(statusClearSeconds) * time.Second
)
