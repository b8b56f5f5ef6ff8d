package handle

import "github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"

// HitRadius is the radius of the circle around a handle that reacts to the pointer.
const HitRadius = 15.0

// Handle is a point the user can drag with the mouse.
// Pos is the only state about where the handle is; the hit circle is derived from it.
type Handle struct {
	Name     string
	Pos      geometry.Point
	Dragging bool
	Hovered  bool

	initial geometry.Point
}

// New creates a handle at pos.
func New(name string, pos geometry.Point) *Handle {
	return &Handle{Name: name, Pos: pos, initial: pos}
}

// HitCircle returns the circle that reacts to the pointer.
func (h *Handle) HitCircle() geometry.Circle {
	return geometry.NewCircle(h.Pos, HitRadius)
}

// Input is what a frame knows about the pointer.
type Input struct {
	Pointer geometry.Point
	// Pressed and Released are the edges of the primary button for this frame.
	Pressed  bool
	Released bool
	// Blocked is set when the pointer is over another widget that owns the press.
	Blocked bool
}

// Set is an ordered list of handles. The order decides which handle wins
// when several are under the pointer on the same press.
type Set struct {
	handles []*Handle
}

// NewSet creates a set from handles, keeping their order.
func NewSet(handles ...*Handle) *Set {
	return &Set{handles: handles}
}

// Handles returns the handles in order.
func (s *Set) Handles() []*Handle {
	return s.handles
}

// Update applies one frame of input to every handle.
func (s *Set) Update(in Input) {
	claimed := false
	for _, h := range s.handles {
		h.Hovered = h.HitCircle().Contains(in.Pointer)
		if in.Pressed && h.Hovered && !in.Blocked && !claimed {
			h.Dragging = true
			claimed = true
		}
		if in.Released {
			h.Dragging = false
		}
		if h.Dragging {
			h.Pos = in.Pointer
		}
	}
}

// Dragging returns the handle being dragged, or nil.
func (s *Set) Dragging() *Handle {
	for _, h := range s.handles {
		if h.Dragging {
			return h
		}
	}
	return nil
}

// Reset puts every handle back where it was created and drops any drag.
func (s *Set) Reset() {
	for _, h := range s.handles {
		h.Pos = h.initial
		h.Dragging = false
		h.Hovered = false
	}
}
