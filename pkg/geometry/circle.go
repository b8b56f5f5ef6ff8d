package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle given by its center and radius (radius >= 0).
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// NewCircle creates a new Circle.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

func (c Circle) String() string {
	return fmt.Sprintf("circle%s r=%.2f", c.Center, c.Radius)
}

// Contains reports whether p is inside the circle or on its boundary.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// TangentAt returns the tangent segment starting at p, p being on the boundary.
// The radius segment center->p is inverted and rotated by a quarter turn, so
// the tangent has the length of the radius.
func (c Circle) TangentAt(p Point) (Line, error) {
	radius := NewLine(c.Center, p)
	if radius.IsDegenerate() {
		return Line{}, fmt.Errorf("tangent at the center: %w", ErrDegenerateLine)
	}
	inverted, err := radius.Invert()
	if err != nil {
		return Line{}, err
	}
	return inverted.RotatedByAngle(math.Pi / 2)
}

// Hit is the full record of an incoming line bouncing off a circle.
type Hit struct {
	// Points are all intersections in solver order.
	Points []Point
	// Nearest is the intersection nearest to the incoming origin.
	Nearest Point
	// Radius is the segment from the center to Nearest.
	Radius Line
	// Tangent is the tangent segment at Nearest.
	Tangent Line
	// Reflected is the outgoing ray starting at Nearest.
	Reflected Line
}

// Hit bounces incoming off the circle.
// Points is filled even when an error is returned, so callers can still show
// the intersections when no reflection is possible.
func (c Circle) Hit(incoming Line) (Hit, error) {
	origin, err := incoming.Origin()
	if err != nil {
		return Hit{}, fmt.Errorf("incoming line: %w", err)
	}

	h := Hit{Points: Intersect(incoming, c)}
	if c.Contains(origin) {
		return h, ErrOriginInside
	}
	if len(h.Points) == 0 {
		return h, ErrNoIntersection
	}

	h.Nearest, err = origin.NearestTo(h.Points)
	if err != nil {
		return h, err
	}
	h.Radius = NewLine(c.Center, h.Nearest)
	h.Tangent, err = c.TangentAt(h.Nearest)
	if err != nil {
		return h, err
	}
	h.Reflected, err = h.Tangent.Reflect(incoming)
	if err != nil {
		return h, fmt.Errorf("reflect off tangent: %w", err)
	}
	h.Reflected.Kind = Ray
	return h, nil
}

// ReflectedLine returns the ray leaving the circle after incoming bounces off it.
func (c Circle) ReflectedLine(incoming Line) (Line, error) {
	h, err := c.Hit(incoming)
	if err != nil {
		return Line{}, err
	}
	return h.Reflected, nil
}

// Polygon returns the vertices of the regular polygon with the given number
// of sides inscribed in the circle, starting at angle 0. At least 3 sides are used.
func (c Circle) Polygon(sides int) []Point {
	if sides < 3 {
		sides = 3
	}
	vertices := make([]Point, sides)
	for i := range vertices {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		vertices[i] = Point{
			X: c.Center.X + c.Radius*math.Cos(theta),
			Y: c.Center.Y + c.Radius*math.Sin(theta),
		}
	}
	return vertices
}
