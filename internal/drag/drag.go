// Package drag converts a stream of pointer events into a bounds-clamped
// position for a single overlay element inside a fixed-size container.
//
// A Controller is driven synchronously from UI event callbacks and is not safe
// for concurrent use. Container and element sizes are passed on every Update;
// the controller never caches geometry between calls.
package drag

import (
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/arrange/internal/geometry"
)

// Session is the transient state of one drag gesture.
type Session struct {
	// PointerOffset is the pointer position relative to the element's
	// top-left corner at grab time.
	PointerOffset geometry.Point
	Active        bool
}

// Controller tracks one overlay's position across a drag gesture.
type Controller struct {
	session Session
	last    geometry.Point
}

// New returns a Controller resting at the given position.
func New(at geometry.Point) *Controller {
	return &Controller{last: at}
}

// Begin starts a gesture. Any session already in progress is replaced.
func (c *Controller) Begin(pointer, element geometry.Point) Session {
	if c.session.Active {
		logrus.Debug("drag: superseding active session")
	}
	c.session = Session{
		PointerOffset: pointer.Sub(element),
		Active:        true,
	}
	c.last = element
	return c.session
}

// Update moves the element so that the grab offset follows the pointer, then
// clamps it to the container. An inactive session returns the last known
// position unchanged; pointer-move events can arrive after pointer-up.
func (c *Controller) Update(pointer geometry.Point, container, element geometry.Size) geometry.Point {
	if !c.session.Active {
		return c.last
	}
	candidate := pointer.Sub(c.session.PointerOffset)
	c.last = geometry.ClampPosition(candidate, container, element)
	return c.last
}

// End deactivates the session. The last position returned by Update is the
// resting position.
func (c *Controller) End() {
	if !c.session.Active {
		return
	}
	c.session.Active = false
	logrus.Debugf("drag: ended at (%.1f, %.1f)", c.last.X, c.last.Y)
}

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.session.Active }

// Position returns the last computed position.
func (c *Controller) Position() geometry.Point { return c.last }

// Session returns a copy of the current session.
func (c *Controller) Session() Session { return c.session }
