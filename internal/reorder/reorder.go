// Package reorder implements drag-to-resequence for ordered, uniquely keyed
// lists.
//
// Every operation is total: invalid references, self-drops and short lists
// return the input slice unchanged. Operations that change the order always
// return a new slice and never write to their input.
package reorder

import (
	"github.com/sirupsen/logrus"
)

// KeyFunc returns the identity of an item. Keys are unique within a sequence.
type KeyFunc[T any] func(T) string

// Session is the transient state of one reorder gesture. An empty DraggedID
// means no drag is active.
type Session struct {
	DraggedID string
}

// Active reports whether the session references a dragged item.
func (s Session) Active() bool { return s.DraggedID != "" }

// Controller tracks one reorder gesture over a sequence of T.
// It is not safe for concurrent use.
type Controller[T any] struct {
	key     KeyFunc[T]
	session Session
	over    string
}

// New returns a Controller that identifies items with key.
func New[T any](key KeyFunc[T]) *Controller[T] {
	return &Controller[T]{key: key}
}

// DragStart begins a gesture on draggedID. An id that is not present yields an
// inactive session. Any previous session is replaced.
func (c *Controller[T]) DragStart(items []T, draggedID string) Session {
	c.over = ""
	if IndexOf(items, c.key, draggedID) < 0 {
		logrus.Debugf("reorder: drag start on unknown id %q ignored", draggedID)
		c.session = Session{}
		return c.session
	}
	c.session = Session{DraggedID: draggedID}
	return c.session
}

// DragOver records the hovered drop target for visual feedback. It never
// changes the order.
func (c *Controller[T]) DragOver(targetID string) {
	if !c.session.Active() {
		return
	}
	c.over = targetID
}

// Drop relocates the dragged item to targetID's position. The session is
// cleared when a move happens; no-op drops leave it for DragEnd.
func (c *Controller[T]) Drop(items []T, targetID string) []T {
	dragged := c.session.DraggedID
	if dragged == "" || dragged == targetID || len(items) < 2 {
		return items
	}
	from := IndexOf(items, c.key, dragged)
	to := IndexOf(items, c.key, targetID)
	if from < 0 || to < 0 {
		logrus.Debugf("reorder: drop %q onto %q cancelled, id not found", dragged, targetID)
		return items
	}
	c.session = Session{}
	c.over = ""
	return Move(items, from, to)
}

// DragEnd clears the session whether or not a drop happened.
func (c *Controller[T]) DragEnd() {
	c.session = Session{}
	c.over = ""
}

// Session returns a copy of the current session.
func (c *Controller[T]) Session() Session { return c.session }

// Over returns the hovered drop target, or "" when there is none.
func (c *Controller[T]) Over() string { return c.over }

// IndexOf returns the index of the item keyed id, or -1.
func IndexOf[T any](items []T, key KeyFunc[T], id string) int {
	if id == "" {
		return -1
	}
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}

// Move removes the element at from and inserts it at index to of the
// post-removal slice. Moving forward therefore lands the element directly
// after the element that was at to. Out-of-range indexes and from == to
// return items unchanged.
func Move[T any](items []T, from, to int) []T {
	n := len(items)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return items
	}
	out := make([]T, 0, n)
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = append(out, moved)
	copy(out[to+1:], out[to:n-1])
	out[to] = moved
	return out
}

// Nudge moves the item keyed id by delta positions, stopping at either end.
// It backs keyboard reordering.
func Nudge[T any](items []T, key KeyFunc[T], id string, delta int) []T {
	from := IndexOf(items, key, id)
	if from < 0 || delta == 0 {
		return items
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(items)-1 {
		to = len(items) - 1
	}
	return Move(items, from, to)
}

// Renumber writes 1-based priorities in slice order through set. The slice
// must be one the caller owns; Drop, Move and Nudge results qualify.
func Renumber[T any](items []T, set func(*T, int)) {
	for i := range items {
		set(&items[i], i+1)
	}
}
