// Package gesture routes UI events to the drag and reorder controllers and
// writes the values they return back into a scene.
package gesture

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/arrange/internal/drag"
	"github.com/ensigniasec/arrange/internal/geometry"
	"github.com/ensigniasec/arrange/internal/reorder"
	"github.com/ensigniasec/arrange/internal/scene"
	"github.com/ensigniasec/arrange/internal/validate"
)

// Dispatcher owns one drag controller for the canvas and one reorder
// controller shared by all sequences; only one list gesture runs at a time.
// It is not safe for concurrent use.
type Dispatcher struct {
	scene *scene.Scene

	drag     *drag.Controller
	dragging string // overlay id of the active drag

	reorder   *reorder.Controller[scene.Item]
	reorderIn string // sequence of the active reorder
}

// NewDispatcher returns a Dispatcher that edits s.
func NewDispatcher(s *scene.Scene) *Dispatcher {
	return &Dispatcher{
		scene:   s,
		drag:    drag.New(geometry.Point{}),
		reorder: reorder.New(scene.ItemKey),
	}
}

// Scene returns the scene being edited.
func (d *Dispatcher) Scene() *scene.Scene { return d.scene }

// Dragging returns the overlay id being dragged, or "".
func (d *Dispatcher) Dragging() string {
	if !d.drag.Active() {
		return ""
	}
	return d.dragging
}

// Reordering returns the sequence and item of the active list drag.
func (d *Dispatcher) Reordering() (sequence, item string) {
	s := d.reorder.Session()
	if !s.Active() {
		return "", ""
	}
	return d.reorderIn, s.DraggedID
}

// Hover returns the hovered drop target of the active list drag, or "".
func (d *Dispatcher) Hover() string { return d.reorder.Over() }

// Apply handles one event and reports whether the scene changed. Only
// malformed events return an error; references to unknown overlays,
// sequences or items are ignored.
//
//nolint:cyclop // One case per event kind.
func (d *Dispatcher) Apply(ev Event) (bool, error) {
	if err := validate.Struct(ev); err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnknownEvent, err)
	}

	switch ev.Kind {
	case PointerDown:
		return d.pointerDown(ev), nil
	case PointerMove:
		return d.pointerMove(ev), nil
	case PointerUp, PointerLeave:
		d.drag.End()
		return false, nil
	case Blur:
		// Losing focus must not leave either gesture stuck.
		d.drag.End()
		d.reorder.DragEnd()
		return false, nil
	case DragStart:
		d.dragStart(ev)
		return false, nil
	case DragOver:
		if ev.Sequence == d.reorderIn {
			d.reorder.DragOver(ev.Item)
		}
		return false, nil
	case Drop:
		return d.drop(ev), nil
	case DragEnd:
		d.reorder.DragEnd()
		return false, nil
	case KeyUp:
		return d.nudge(ev, -1), nil
	case KeyDown:
		return d.nudge(ev, 1), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
}

func (d *Dispatcher) pointerDown(ev Event) bool {
	i := d.scene.Overlay(ev.Target)
	if i < 0 {
		logrus.Debugf("gesture: pointer-down on unknown overlay %q", ev.Target)
		return false
	}
	d.dragging = ev.Target
	d.drag.Begin(ev.Point(), d.scene.Overlays[i].Position)
	return false
}

func (d *Dispatcher) pointerMove(ev Event) bool {
	if !d.drag.Active() {
		return false
	}
	i := d.scene.Overlay(d.dragging)
	if i < 0 {
		// The overlay vanished mid-gesture.
		d.drag.End()
		return false
	}
	o := &d.scene.Overlays[i]
	next := d.drag.Update(ev.Point(), d.scene.Canvas, o.Size)
	if next == o.Position {
		return false
	}
	o.Position = next
	return true
}

func (d *Dispatcher) dragStart(ev Event) {
	d.reorderIn = ev.Sequence
	items := d.items(ev.Sequence)
	d.reorder.DragStart(items, ev.Item)
}

func (d *Dispatcher) drop(ev Event) bool {
	if ev.Sequence != d.reorderIn {
		logrus.Debugf("gesture: drop into %q while dragging in %q ignored", ev.Sequence, d.reorderIn)
		return false
	}
	i := d.scene.Sequence(ev.Sequence)
	if i < 0 {
		return false
	}
	return d.replace(i, d.reorder.Drop(d.scene.Sequences[i].Items, ev.Item))
}

func (d *Dispatcher) nudge(ev Event, delta int) bool {
	i := d.scene.Sequence(ev.Sequence)
	if i < 0 {
		return false
	}
	return d.replace(i, reorder.Nudge(d.scene.Sequences[i].Items, scene.ItemKey, ev.Item, delta))
}

// replace stores next as sequence i's items when it is a new slice. Manual
// priorities follow the new drag order.
func (d *Dispatcher) replace(i int, next []scene.Item) bool {
	seq := &d.scene.Sequences[i]
	if sameSlice(seq.Items, next) {
		return false
	}
	if seq.Prioritized() {
		reorder.Renumber(next, scene.SetPriority)
	}
	seq.Items = next
	return true
}

func (d *Dispatcher) items(sequence string) []scene.Item {
	i := d.scene.Sequence(sequence)
	if i < 0 {
		return nil
	}
	return d.scene.Sequences[i].Items
}

func sameSlice(a, b []scene.Item) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
