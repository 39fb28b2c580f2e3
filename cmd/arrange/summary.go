package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ensigniasec/arrange/internal/scene"
)

const reportWidth = 60

// printSummary writes a human-readable overview of a loaded scene.
func printSummary(w io.Writer, s *scene.Scene) {
	name := s.Name
	if name == "" {
		name = "untitled"
	}
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "SCENE %s\n", name)
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "Canvas: %gx%g\n", s.Canvas.Width, s.Canvas.Height)

	fmt.Fprintf(w, "\nOverlays (%d):\n", len(s.Overlays))
	for _, o := range s.Overlays {
		fmt.Fprintf(w, "  %-16s %-6s at (%g, %g) size %gx%g\n",
			o.ID, o.Kind, o.Position.X, o.Position.Y, o.Size.Width, o.Size.Height)
	}

	fmt.Fprintf(w, "\nSequences (%d):\n", len(s.Sequences))
	for _, seq := range s.Sequences {
		fmt.Fprintf(w, "  %s (%d items)\n", seq.Name, len(seq.Items))
		for i, it := range seq.Items {
			label := it.Label
			if label == "" {
				label = it.ID
			}
			if it.Priority > 0 {
				fmt.Fprintf(w, "    %2d. %s [p%d]\n", i+1, label, it.Priority)
				continue
			}
			fmt.Fprintf(w, "    %2d. %s\n", i+1, label)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", reportWidth))
	fmt.Fprintln(w, "OK")
}
