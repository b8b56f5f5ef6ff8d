// Package scene holds the reflection demo state: three draggable handles
// (circle center, ray origin, ray target) and a radius, and turns them into a
// Frame of geometry once per rendered frame.
package scene

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/handle"
)

// Scene is the only state that survives from one frame to the next.
type Scene struct {
	Center *handle.Handle
	Origin *handle.Handle
	Target *handle.Handle
	Radius float64

	handles *handle.Set
	radius0 float64
}

// New creates a scene from the initial positions in cfg.
func New(cfg *Config) *Scene {
	s := &Scene{
		Center:  handle.New("center", cfg.CircleCenter),
		Origin:  handle.New("origin", cfg.RayOrigin),
		Target:  handle.New("target", cfg.RayTarget),
		Radius:  cfg.CircleRadius,
		radius0: cfg.CircleRadius,
	}
	// ray handles first: they are usually dropped on the circle's outline
	s.handles = handle.NewSet(s.Target, s.Origin, s.Center)
	return s
}

// Handles returns the draggable handles in hit-test order.
func (s *Scene) Handles() *handle.Set {
	return s.handles
}

// Update applies one frame of pointer input to the handles.
func (s *Scene) Update(in handle.Input) {
	s.handles.Update(in)
}

// Reset restores the initial handle positions and radius.
func (s *Scene) Reset() {
	s.handles.Reset()
	s.Radius = s.radius0
}

// Circle returns the circle at the current handle position.
func (s *Scene) Circle() geometry.Circle {
	return geometry.NewCircle(s.Center.Pos, s.Radius)
}

// Incoming returns the ray from the origin handle through the target handle.
func (s *Scene) Incoming() geometry.Line {
	return geometry.NewRay(s.Origin.Pos, s.Target.Pos)
}

// Frame is everything computed for one rendered frame.
type Frame struct {
	Viewport geometry.Viewport
	Circle   geometry.Circle
	Incoming geometry.Line
	Hit      geometry.Hit
	// Err tells why no reflection is drawn; nil when Hit.Reflected is valid.
	Err     error
	Handles []handle.Handle
}

// Compute runs the solver and the reflection engine on the current scene.
// Geometry failures never stop the frame: they are kept in Frame.Err and the
// frame falls back to the plain incoming ray.
func (s *Scene) Compute(vp geometry.Viewport) Frame {
	f := Frame{
		Viewport: vp,
		Circle:   s.Circle(),
		Incoming: s.Incoming(),
	}
	f.Hit, f.Err = f.Circle.Hit(f.Incoming)
	for _, h := range s.handles.Handles() {
		f.Handles = append(f.Handles, *h)
	}
	return f
}

// Reflected reports whether the frame has a valid reflected ray.
func (f Frame) Reflected() bool {
	return f.Err == nil
}

// Status is a one line description of the frame outcome.
func (f Frame) Status() string {
	switch {
	case f.Err == nil:
		return fmt.Sprintf("reflected at %s", f.Hit.Nearest)
	case errors.Is(f.Err, geometry.ErrOriginInside):
		return "origin inside the circle: no reflection"
	case errors.Is(f.Err, geometry.ErrNoIntersection):
		return "ray misses the circle"
	case errors.Is(f.Err, geometry.ErrDegenerateLine):
		return "origin and target coincide"
	default:
		return f.Err.Error()
	}
}
