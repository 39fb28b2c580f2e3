package drag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/arrange/internal/geometry"
)

var (
	banner   = geometry.Size{Width: 400, Height: 300}
	headline = geometry.Size{Width: 100, Height: 50}
)

func TestController_GrabAndMovePastRightEdge(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	s := c.Begin(geometry.Point{X: 120, Y: 80}, geometry.Point{X: 100, Y: 60})
	require.True(t, s.Active)
	assert.Equal(t, geometry.Point{X: 20, Y: 20}, s.PointerOffset)

	got := c.Update(geometry.Point{X: 500, Y: 80}, banner, headline)
	assert.Equal(t, geometry.Point{X: 300, Y: 60}, got)
}

func TestController_ClampingInvariant(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 50, Y: 25}, geometry.Point{X: 0, Y: 0})

	for x := -1000.0; x <= 1000; x += 37 {
		for y := -1000.0; y <= 1000; y += 41 {
			p := c.Update(geometry.Point{X: x, Y: y}, banner, headline)
			require.GreaterOrEqual(t, p.X, 0.0)
			require.LessOrEqual(t, p.X, banner.Width-headline.Width)
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, banner.Height-headline.Height)
		}
	}
}

func TestController_Idempotent(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 10, Y: 10}, geometry.Point{X: 0, Y: 0})

	first := c.Update(geometry.Point{X: 140, Y: 95}, banner, headline)
	second := c.Update(geometry.Point{X: 140, Y: 95}, banner, headline)
	assert.Equal(t, first, second)
	assert.Equal(t, geometry.Point{X: 130, Y: 85}, first)
}

func TestController_UpdateAfterEndIsNoop(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 10, Y: 10}, geometry.Point{X: 0, Y: 0})
	rest := c.Update(geometry.Point{X: 60, Y: 40}, banner, headline)
	c.End()

	assert.False(t, c.Active())
	got := c.Update(geometry.Point{X: 390, Y: 290}, banner, headline)
	assert.Equal(t, rest, got)
	assert.Equal(t, rest, c.Position())
}

func TestController_UpdateWithoutBegin(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{X: 7, Y: 9})
	got := c.Update(geometry.Point{X: 200, Y: 200}, banner, headline)
	assert.Equal(t, geometry.Point{X: 7, Y: 9}, got)
}

func TestController_LastGrabWins(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 10, Y: 10}, geometry.Point{X: 0, Y: 0})
	s := c.Begin(geometry.Point{X: 250, Y: 120}, geometry.Point{X: 200, Y: 100})

	assert.Equal(t, geometry.Point{X: 50, Y: 20}, s.PointerOffset)
	assert.Equal(t, s, c.Session())

	got := c.Update(geometry.Point{X: 260, Y: 130}, banner, headline)
	assert.Equal(t, geometry.Point{X: 210, Y: 110}, got)

	// A single End closes the superseding session; there is nothing stacked.
	c.End()
	assert.False(t, c.Active())
}

func TestController_DegenerateContainer(t *testing.T) {
	t.Parallel()

	narrow := geometry.Size{Width: 50, Height: 300}
	wide := geometry.Size{Width: 100, Height: 50}

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 5, Y: 5}, geometry.Point{X: 0, Y: 0})

	for _, x := range []float64{-500, -1, 0, 25, 49, 50, 500} {
		p := c.Update(geometry.Point{X: x, Y: 100}, narrow, wide)
		assert.Equal(t, 0.0, p.X)
		assert.False(t, math.IsNaN(p.X))
		assert.False(t, math.IsNaN(p.Y))
	}
}

func TestController_NonFinitePointer(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 5, Y: 5}, geometry.Point{X: 0, Y: 0})

	p := c.Update(geometry.Point{X: math.NaN(), Y: math.Inf(1)}, banner, headline)
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, p)
}

func TestController_GeometryReadFresh(t *testing.T) {
	t.Parallel()

	c := New(geometry.Point{})
	c.Begin(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 0})

	assert.Equal(t, 300.0, c.Update(geometry.Point{X: 999, Y: 0}, banner, headline).X)

	// After a resize the new bounds apply immediately.
	resized := geometry.Size{Width: 200, Height: 300}
	assert.Equal(t, 100.0, c.Update(geometry.Point{X: 999, Y: 0}, resized, headline).X)
}
