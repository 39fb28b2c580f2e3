package gesture

import (
	"errors"

	"github.com/ensigniasec/arrange/internal/geometry"
)

// Kind names a UI event.
type Kind string

const (
	PointerDown  Kind = "pointer-down"
	PointerMove  Kind = "pointer-move"
	PointerUp    Kind = "pointer-up"
	PointerLeave Kind = "pointer-leave"
	Blur         Kind = "blur"
	DragStart    Kind = "drag-start"
	DragOver     Kind = "drag-over"
	Drop         Kind = "drop"
	DragEnd      Kind = "drag-end"
	KeyUp        Kind = "key-up"
	KeyDown      Kind = "key-down"
)

// ErrUnknownEvent is returned by Apply for malformed events.
var ErrUnknownEvent = errors.New("unknown event")

// Event is one UI event in container coordinates.
//
// Pointer events address an overlay by Target; list events address a
// sequence by Sequence and an item by Item (the dragged item for drag-start,
// the drop target for drag-over and drop).
type Event struct {
	Kind     Kind    `json:"kind" yaml:"kind" validate:"required,oneof=pointer-down pointer-move pointer-up pointer-leave blur drag-start drag-over drop drag-end key-up key-down"`
	Target   string  `json:"target,omitempty" yaml:"target,omitempty"`
	Sequence string  `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Item     string  `json:"item,omitempty" yaml:"item,omitempty"`
	X        float64 `json:"x,omitempty" yaml:"x,omitempty" validate:"finite"`
	Y        float64 `json:"y,omitempty" yaml:"y,omitempty" validate:"finite"`
}

// Point returns the event's pointer coordinates.
func (e Event) Point() geometry.Point {
	return geometry.Point{X: e.X, Y: e.Y}
}
