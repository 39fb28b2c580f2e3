// Package geometry holds the small set of value types and clamping helpers
// shared by the drag and reorder controllers. It has no UI dependencies.
package geometry

import "math"

// Point is a position in pixels relative to a container's top-left origin.
type Point struct {
	X float64 `json:"x" yaml:"x" validate:"finite"`
	Y float64 `json:"y" yaml:"y" validate:"finite"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width" yaml:"width" validate:"finite,gte=0"`
	Height float64 `json:"height" yaml:"height" validate:"finite,gte=0"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned box with its top-left corner at Min.
type Rect struct {
	Min  Point
	Size Size
}

// Contains reports whether p lies inside r. The far edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.Size.Width &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Size.Height
}

// Clamp restricts v to [lo, hi]. Non-finite values collapse to lo so callers
// never observe NaN or infinities.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Travel is the largest offset an element can take inside a container on
// each axis. An element larger than its container gets zero travel.
func Travel(container, element Size) Size {
	return Size{
		Width:  upper(container.Width, element.Width),
		Height: upper(container.Height, element.Height),
	}
}

func upper(container, element float64) float64 {
	d := container - element
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if math.IsInf(d, 1) {
		return math.MaxFloat64
	}
	return d
}

// ClampPosition clamps p so an element of the given size stays inside the
// container.
func ClampPosition(p Point, container, element Size) Point {
	t := Travel(container, element)
	return Point{
		X: Clamp(p.X, 0, t.Width),
		Y: Clamp(p.Y, 0, t.Height),
	}
}
