package geometry

import "errors"

var (
	// ErrDegenerateLine is returned when a line has A == B == 0 and so has no direction.
	ErrDegenerateLine = errors.New("degenerate line: a and b are both zero")
	// ErrNoCandidates is returned by NearestTo on an empty candidate list.
	ErrNoCandidates = errors.New("nearest point search without candidates")
	// ErrNoIntersection is returned when an incoming line misses the circle.
	ErrNoIntersection = errors.New("line does not intersect the circle")
	// ErrOriginInside is returned when the incoming line starts inside the circle.
	ErrOriginInside = errors.New("line origin lies inside the circle")
)
