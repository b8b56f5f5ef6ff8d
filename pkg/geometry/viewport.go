package geometry

import "math"

// Viewport is the drawable rectangle [0, Width] x [0, Height].
// Every function that needs screen bounds takes it explicitly.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewViewport creates a viewport from integer screen dimensions.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height)}
}

// Contains reports whether p lies inside the viewport, edges included.
func (v Viewport) Contains(p Point) bool {
	return p.X >= -Epsilon && p.X <= v.Width+Epsilon &&
		p.Y >= -Epsilon && p.Y <= v.Height+Epsilon
}

// ClipRay clips the ray origin + t*dir, t >= 0, against the viewport.
// It returns the visible part of the ray, or false when the ray never enters it.
func (v Viewport) ClipRay(origin, dir Point) (Point, Point, bool) {
	return v.clip(origin, dir, math.Inf(1))
}

// ClipSegment clips the segment from p to q against the viewport.
func (v Viewport) ClipSegment(p, q Point) (Point, Point, bool) {
	return v.clip(p, q.Sub(p), 1)
}

// clip is a Liang-Barsky clipper of origin + t*dir for t in [0, tMax].
func (v Viewport) clip(origin, dir Point, tMax float64) (Point, Point, bool) {
	if dir.LenSqr() == 0 {
		return origin, origin, false
	}
	t0, t1 := 0.0, tMax
	edges := [4]struct{ p, q float64 }{
		{-dir.X, origin.X},
		{dir.X, v.Width - origin.X},
		{-dir.Y, origin.Y},
		{dir.Y, v.Height - origin.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			// parallel to this edge: outside means never visible
			if e.q < 0 {
				return origin, origin, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return origin, origin, false
		}
	}
	return origin.Add(dir.Mul(t0)), origin.Add(dir.Mul(t1)), true
}
