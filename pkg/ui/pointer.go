package ui

// Pointer is the mouse state for one frame, read once by the frame loop and
// handed to every widget.
type Pointer struct {
	X, Y float64
	// Down is true while the primary button is held, Pressed and Released
	// only on the frame it went down or up.
	Down     bool
	Pressed  bool
	Released bool
	WheelY   float64
}

// In reports whether the pointer is inside the rectangle (edges included).
func (p Pointer) In(x, y, w, h float64) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}
