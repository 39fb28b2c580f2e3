package gesture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/arrange/internal/geometry"
	"github.com/ensigniasec/arrange/internal/scene"
)

func newScene() *scene.Scene {
	return &scene.Scene{
		Name:   "summer-sale",
		Canvas: geometry.Size{Width: 400, Height: 300},
		Overlays: []scene.Overlay{
			{ID: "headline", Position: geometry.Point{X: 100, Y: 60}, Size: geometry.Size{Width: 100, Height: 50}},
			{ID: "logo", Position: geometry.Point{X: 0, Y: 0}, Size: geometry.Size{Width: 40, Height: 40}},
		},
		Sequences: []scene.Sequence{
			{Name: "bundle", Items: []scene.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}},
			{Name: "posts", Items: []scene.Item{
				{ID: "p1", Priority: 1}, {ID: "p2", Priority: 2}, {ID: "p3", Priority: 3},
			}},
		},
	}
}

func itemIDs(items []scene.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func apply(t *testing.T, d *Dispatcher, evs ...Event) {
	t.Helper()
	for _, ev := range evs {
		_, err := d.Apply(ev)
		require.NoError(t, err)
	}
}

func TestDispatcher_PointerDrag(t *testing.T) {
	t.Parallel()

	s := newScene()
	d := NewDispatcher(s)

	apply(t, d, Event{Kind: PointerDown, Target: "headline", X: 120, Y: 80})
	assert.Equal(t, "headline", d.Dragging())

	changed, err := d.Apply(Event{Kind: PointerMove, X: 500, Y: 80})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, geometry.Point{X: 300, Y: 60}, s.Overlays[0].Position)

	// Same pointer again: nothing changes.
	changed, err = d.Apply(Event{Kind: PointerMove, X: 500, Y: 80})
	require.NoError(t, err)
	assert.False(t, changed)

	apply(t, d, Event{Kind: PointerUp})
	assert.Equal(t, "", d.Dragging())

	// Late move after pointer-up is ignored.
	changed, err = d.Apply(Event{Kind: PointerMove, X: 10, Y: 10})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, geometry.Point{X: 300, Y: 60}, s.Overlays[0].Position)
}

func TestDispatcher_BlurEndsGestures(t *testing.T) {
	t.Parallel()

	s := newScene()
	d := NewDispatcher(s)

	apply(t, d,
		Event{Kind: PointerDown, Target: "logo", X: 5, Y: 5},
		Event{Kind: DragStart, Sequence: "bundle", Item: "a"},
		Event{Kind: Blur},
	)
	assert.Equal(t, "", d.Dragging())
	seq, item := d.Reordering()
	assert.Equal(t, "", seq)
	assert.Equal(t, "", item)

	apply(t, d, Event{Kind: PointerMove, X: 200, Y: 200})
	assert.Equal(t, geometry.Point{}, s.Overlays[1].Position)
}

func TestDispatcher_PointerDownSupersedes(t *testing.T) {
	t.Parallel()

	s := newScene()
	d := NewDispatcher(s)

	apply(t, d,
		Event{Kind: PointerDown, Target: "headline", X: 120, Y: 80},
		Event{Kind: PointerDown, Target: "logo", X: 10, Y: 10},
		Event{Kind: PointerMove, X: 60, Y: 30},
	)
	assert.Equal(t, geometry.Point{X: 50, Y: 20}, s.Overlays[1].Position)
	assert.Equal(t, geometry.Point{X: 100, Y: 60}, s.Overlays[0].Position)
}

func TestDispatcher_UnknownOverlay(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newScene())
	changed, err := d.Apply(Event{Kind: PointerDown, Target: "ghost", X: 1, Y: 1})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "", d.Dragging())
}

func TestDispatcher_Reorder(t *testing.T) {
	t.Parallel()

	s := newScene()
	d := NewDispatcher(s)
	before := s.Sequences[0].Items

	apply(t, d,
		Event{Kind: DragStart, Sequence: "bundle", Item: "a"},
		Event{Kind: DragOver, Sequence: "bundle", Item: "c"},
	)
	assert.Equal(t, "c", d.Hover())

	changed, err := d.Apply(Event{Kind: Drop, Sequence: "bundle", Item: "d"})
	require.NoError(t, err)
	assert.True(t, changed)
	apply(t, d, Event{Kind: DragEnd, Sequence: "bundle"})

	if diff := cmp.Diff([]string{"b", "c", "d", "a", "e"}, itemIDs(s.Sequences[0].Items)); diff != "" {
		t.Errorf("bundle mismatch (-want +got):\n%s", diff)
	}
	// The previous slice is left as it was.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, itemIDs(before))
	// Unprioritized sequences keep zero priorities.
	assert.Equal(t, 0, s.Sequences[0].Items[0].Priority)
}

func TestDispatcher_ReorderRenumbersPriorities(t *testing.T) {
	t.Parallel()

	s := newScene()
	d := NewDispatcher(s)

	apply(t, d,
		Event{Kind: DragStart, Sequence: "posts", Item: "p3"},
		Event{Kind: Drop, Sequence: "posts", Item: "p1"},
	)

	want := []scene.Item{{ID: "p3", Priority: 1}, {ID: "p1", Priority: 2}, {ID: "p2", Priority: 3}}
	if diff := cmp.Diff(want, s.Sequences[1].Items); diff != "" {
		t.Errorf("posts mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcher_DropNoops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []Event
	}{
		{name: "no drag start", events: []Event{{Kind: Drop, Sequence: "bundle", Item: "c"}}},
		{name: "self drop", events: []Event{
			{Kind: DragStart, Sequence: "bundle", Item: "c"},
			{Kind: Drop, Sequence: "bundle", Item: "c"},
		}},
		{name: "unknown target", events: []Event{
			{Kind: DragStart, Sequence: "bundle", Item: "c"},
			{Kind: Drop, Sequence: "bundle", Item: "missing"},
		}},
		{name: "unknown dragged", events: []Event{
			{Kind: DragStart, Sequence: "bundle", Item: "missing"},
			{Kind: Drop, Sequence: "bundle", Item: "a"},
		}},
		{name: "other sequence", events: []Event{
			{Kind: DragStart, Sequence: "bundle", Item: "a"},
			{Kind: Drop, Sequence: "posts", Item: "p2"},
		}},
		{name: "cancelled by drag end", events: []Event{
			{Kind: DragStart, Sequence: "bundle", Item: "a"},
			{Kind: DragEnd, Sequence: "bundle"},
			{Kind: Drop, Sequence: "bundle", Item: "e"},
		}},
		{name: "unknown sequence", events: []Event{
			{Kind: DragStart, Sequence: "nope", Item: "a"},
			{Kind: Drop, Sequence: "nope", Item: "b"},
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newScene()
			d := NewDispatcher(s)
			for _, ev := range tt.events {
				changed, err := d.Apply(ev)
				require.NoError(t, err)
				assert.False(t, changed)
			}
			assert.Equal(t, []string{"a", "b", "c", "d", "e"}, itemIDs(s.Sequences[0].Items))
			assert.Equal(t, []string{"p1", "p2", "p3"}, itemIDs(s.Sequences[1].Items))
		})
	}
}

func TestDispatcher_KeyboardReorder(t *testing.T) {
	t.Parallel()

	s := newScene()
	d := NewDispatcher(s)

	apply(t, d,
		Event{Kind: KeyDown, Sequence: "posts", Item: "p1"},
		Event{Kind: KeyDown, Sequence: "posts", Item: "p1"},
	)
	assert.Equal(t, []string{"p2", "p3", "p1"}, itemIDs(s.Sequences[1].Items))
	assert.Equal(t, 3, s.Sequences[1].Items[2].Priority)

	changed, err := d.Apply(Event{Kind: KeyDown, Sequence: "posts", Item: "p1"})
	require.NoError(t, err)
	assert.False(t, changed)

	apply(t, d, Event{Kind: KeyUp, Sequence: "bundle", Item: "e"})
	assert.Equal(t, []string{"a", "b", "c", "e", "d"}, itemIDs(s.Sequences[0].Items))
}

func TestDispatcher_MalformedEvents(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newScene())

	_, err := d.Apply(Event{Kind: "double-click"})
	require.ErrorIs(t, err, ErrUnknownEvent)

	_, err = d.Apply(Event{})
	require.ErrorIs(t, err, ErrUnknownEvent)
}
