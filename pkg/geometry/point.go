package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the tolerance used for every geometric comparison in this package.
// Coordinates are screen pixels, so 1e-4 is far below anything visible while
// still absorbing the rounding of the quadratic solver.
const (
	Epsilon = 1e-4
)

// Point represents a 2D point (or vector) in screen space, y growing downwards.
// Fields are public because they are fundamental data, not internal state:
// p := Point{X: 1, Y: 2}
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a new Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers returning new values, the type stays immutable.
// ---------------------------------------------------------------------

// Add adds two points component-wise.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub subtracts other from p.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Mul scales the point by a scalar value.
func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar}
}

// Dot calculates the dot product of two vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross calculates the 2D scalar cross product (z-component of 3D cross product).
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// LenSqr calculates the squared magnitude of the vector. Use it for comparisons.
func (p Point) LenSqr() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Len calculates the magnitude (length) of the vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns a unit vector in the same direction,
// or the zero vector if the length is effectively zero.
func (p Point) Normalize() Point {
	l := p.Len()
	if l < Epsilon {
		return Point{0, 0}
	}
	return p.Mul(1 / l)
}

// Lerp (Linear Interpolate) calculates a point between p and target based on t [0, 1].
func (p Point) Lerp(target Point, t float64) Point {
	return p.Add(target.Sub(p).Mul(t))
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return p.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another point.
func (p Point) DistanceSquaredTo(other Point) float64 {
	return p.Sub(other).LenSqr()
}

// NearestTo returns the candidate closest to p.
// Ties keep the earliest candidate, so the result is stable for a given input order.
func (p Point) NearestTo(candidates []Point) (Point, error) {
	if len(candidates) == 0 {
		return Point{}, ErrNoCandidates
	}
	distances := make([]float64, len(candidates))
	for i, c := range candidates {
		distances[i] = p.DistanceTo(c)
	}
	return candidates[floats.MinIdx(distances)], nil
}

// RotatedAround rotates p by angle (radians) around pivot.
func (p Point) RotatedAround(pivot Point, angle float64) Point {
	d := p.Sub(pivot)
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)
	return Point{
		X: pivot.X + d.X*cosTheta - d.Y*sinTheta,
		Y: pivot.Y + d.X*sinTheta + d.Y*cosTheta,
	}
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two points are equal within Epsilon on both axes.
func (p Point) Eq(other Point) bool {
	return scalar.EqualWithinAbs(p.X, other.X, Epsilon) && scalar.EqualWithinAbs(p.Y, other.Y, Epsilon)
}

// ParsePoint parses "x,y" into a Point.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("point %q: bad x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("point %q: bad y: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}
