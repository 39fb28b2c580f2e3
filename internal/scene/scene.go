// Package scene holds the caller-owned data the engine operates on: a canvas
// with freely positioned overlays, and named sequences of ordered items.
//
// The engine never mutates a Scene in place. Dispatchers replace overlay
// positions and sequence slices with the values the controllers return.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/arrange/internal/codec"
	"github.com/ensigniasec/arrange/internal/geometry"
	"github.com/ensigniasec/arrange/internal/validate"
)

// ErrInvalidScene wraps every load and validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// OverlayKind distinguishes text from image layers. It only affects rendering.
type OverlayKind string

const (
	TextOverlay  OverlayKind = "text"
	ImageOverlay OverlayKind = "image"
)

// Overlay is a draggable layer placed on the canvas.
type Overlay struct {
	ID       string         `json:"id" yaml:"id" validate:"required"`
	Kind     OverlayKind    `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=text image"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Position geometry.Point `json:"position" yaml:"position"`
	Size     geometry.Size  `json:"size" yaml:"size"`
}

// Rect returns the overlay's bounding box in canvas coordinates.
func (o Overlay) Rect() geometry.Rect {
	return geometry.Rect{Min: o.Position, Size: o.Size}
}

// Item is one entry of a sequence: a bundle item, a post, an uploaded file.
type Item struct {
	ID       string         `json:"id" yaml:"id" validate:"required"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Priority int            `json:"priority,omitempty" yaml:"priority,omitempty" validate:"gte=0"`
	Payload  map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// ItemKey identifies items for the reorder controller.
func ItemKey(it Item) string { return it.ID }

// SetPriority is the setter used when renumbering a sequence.
func SetPriority(it *Item, n int) { it.Priority = n }

// Sequence is an ordered list of items. Order defines render/priority order.
type Sequence struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Items []Item `json:"items" yaml:"items" validate:"unique=ID,dive"`
}

// Prioritized reports whether any item carries a manual priority.
func (s Sequence) Prioritized() bool {
	for _, it := range s.Items {
		if it.Priority > 0 {
			return true
		}
	}
	return false
}

// Scene is the full arrangement handed to the engine.
type Scene struct {
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Canvas    geometry.Size `json:"canvas" yaml:"canvas"`
	Overlays  []Overlay     `json:"overlays,omitempty" yaml:"overlays,omitempty" validate:"unique=ID,dive"`
	Sequences []Sequence    `json:"sequences,omitempty" yaml:"sequences,omitempty" validate:"unique=Name,dive"`
}

// Load reads, normalizes and validates a scene file.
func Load(path string) (*Scene, error) {
	logrus.Debug("Loading scene file from: ", path)
	var s Scene
	if err := codec.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScene, path, err)
	}
	if err := s.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScene, path, err)
	}
	return &s, nil
}

// Normalize fills in missing ids, validates the scene and clamps every overlay
// into the canvas so the position invariant holds before the first drag.
func (s *Scene) Normalize() error {
	for i := range s.Overlays {
		if s.Overlays[i].ID == "" {
			s.Overlays[i].ID = uuid.NewString()
		}
		if s.Overlays[i].Kind == "" {
			s.Overlays[i].Kind = TextOverlay
		}
	}
	for i := range s.Sequences {
		for j := range s.Sequences[i].Items {
			if s.Sequences[i].Items[j].ID == "" {
				s.Sequences[i].Items[j].ID = uuid.NewString()
			}
		}
	}

	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("canvas must have a positive size, got %gx%g", s.Canvas.Width, s.Canvas.Height)
	}

	for i := range s.Overlays {
		o := &s.Overlays[i]
		clamped := geometry.ClampPosition(o.Position, s.Canvas, o.Size)
		if clamped != o.Position {
			logrus.Warnf("Overlay %q at (%g, %g) lies outside the canvas; moved to (%g, %g).",
				o.ID, o.Position.X, o.Position.Y, clamped.X, clamped.Y)
			o.Position = clamped
		}
	}
	return nil
}

// Overlay returns the index of the overlay with the given id, or -1.
func (s *Scene) Overlay(id string) int {
	for i := range s.Overlays {
		if s.Overlays[i].ID == id {
			return i
		}
	}
	return -1
}

// Sequence returns the index of the named sequence, or -1.
func (s *Scene) Sequence(name string) int {
	for i := range s.Sequences {
		if s.Sequences[i].Name == name {
			return i
		}
	}
	return -1
}

// OverlayAt returns the index of the topmost overlay containing p, or -1.
// Later overlays are drawn above earlier ones.
func (s *Scene) OverlayAt(p geometry.Point) int {
	for i := len(s.Overlays) - 1; i >= 0; i-- {
		if s.Overlays[i].Rect().Contains(p) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy safe to hand to another goroutine. Item payloads
// are copied one level deep.
func (s *Scene) Clone() *Scene {
	out := &Scene{
		Name:   s.Name,
		Canvas: s.Canvas,
	}
	if s.Overlays != nil {
		out.Overlays = append([]Overlay(nil), s.Overlays...)
	}
	if s.Sequences != nil {
		out.Sequences = make([]Sequence, len(s.Sequences))
		for i, seq := range s.Sequences {
			out.Sequences[i] = Sequence{Name: seq.Name}
			if seq.Items == nil {
				continue
			}
			items := make([]Item, len(seq.Items))
			for j, it := range seq.Items {
				items[j] = it
				if it.Payload != nil {
					items[j].Payload = make(map[string]any, len(it.Payload))
					for k, v := range it.Payload {
						items[j].Payload[k] = v
					}
				}
			}
			out.Sequences[i].Items = items
		}
	}
	return out
}
