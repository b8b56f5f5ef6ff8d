package geometry

import (
	"fmt"
	"math"
)

// Kind tells how far a Line extends.
type Kind int

const (
	// Segment is bounded by its From and To endpoints.
	Segment Kind = iota
	// Ray starts at From and extends forever through To.
	Ray
	// Unbounded has no endpoints; it is drawn across the viewport.
	Unbounded
)

func (k Kind) String() string {
	switch k {
	case Segment:
		return "segment"
	case Ray:
		return "ray"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Line is a line in general form A*x + B*y + C = 0.
//
// The coefficients are normalised: when A != 0 they are divided by |A|,
// otherwise by |B|. The sign is kept, so the direction (B, -A) of a line built
// from two points always points from From to To.
// From and To are meaningful only for Segment and Ray lines.
type Line struct {
	A, B, C float64
	Kind    Kind
	From    Point
	To      Point
}

// NewLine returns the segment from p1 to p2.
func NewLine(p1, p2 Point) Line {
	a, b, c := coefficients(p1, p2)
	return Line{A: a, B: b, C: c, Kind: Segment, From: p1, To: p2}
}

// NewRay returns the ray starting at origin and passing through through.
func NewRay(origin, through Point) Line {
	l := NewLine(origin, through)
	l.Kind = Ray
	return l
}

// NewLineABC returns the unbounded line a*x + b*y + c = 0.
func NewLineABC(a, b, c float64) Line {
	a, b, c = normalize(a, b, c)
	return Line{A: a, B: b, C: c, Kind: Unbounded}
}

func coefficients(p1, p2 Point) (float64, float64, float64) {
	a := p1.Y - p2.Y
	b := p2.X - p1.X
	c := p1.X*p2.Y - p2.X*p1.Y
	return normalize(a, b, c)
}

func normalize(a, b, c float64) (float64, float64, float64) {
	switch {
	case a != 0:
		n := math.Abs(a)
		return a / n, b / n, c / n
	case b != 0:
		n := math.Abs(b)
		return a / n, b / n, c / n
	}
	return a, b, c
}

// rebuild returns the line through from and to, keeping kind.
func rebuild(from, to Point, kind Kind) Line {
	l := NewLine(from, to)
	l.Kind = kind
	if kind == Unbounded {
		l.From, l.To = Point{}, Point{}
	}
	return l
}

func (l Line) String() string {
	return fmt.Sprintf("%s %.4gx%+.4gy%+.4g=0 %s->%s", l.Kind, l.A, l.B, l.C, l.From, l.To)
}

// IsDegenerate reports whether the line has no direction (A == B == 0).
func (l Line) IsDegenerate() bool {
	return l.A == 0 && l.B == 0
}

// Eval returns A*x + B*y + C, zero for points on the line.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Direction returns the direction vector (B, -A).
func (l Line) Direction() Point {
	return Point{X: l.B, Y: -l.A}
}

// DistanceTo returns the perpendicular distance from p to the infinite line.
func (l Line) DistanceTo(p Point) float64 {
	if l.IsDegenerate() {
		return p.DistanceTo(l.From)
	}
	return math.Abs(l.Eval(p)) / math.Hypot(l.A, l.B)
}

// Contains reports whether p lies on the infinite line.
func (l Line) Contains(p Point) bool {
	if l.IsDegenerate() {
		return false
	}
	return l.DistanceTo(p) <= Epsilon
}

// Angle returns acos(B / |(A, B)|), the angle of the line in [0, Pi].
func (l Line) Angle() (float64, error) {
	if l.IsDegenerate() {
		return 0, ErrDegenerateLine
	}
	return math.Acos(clampCos(l.B / math.Hypot(l.A, l.B))), nil
}

// AngleBetween returns the angle between the normal vectors of l and other, in [0, Pi].
func (l Line) AngleBetween(other Line) (float64, error) {
	if l.IsDegenerate() || other.IsDegenerate() {
		return 0, ErrDegenerateLine
	}
	cos := (l.A*other.A + l.B*other.B) / (math.Hypot(l.A, l.B) * math.Hypot(other.A, other.B))
	return math.Acos(clampCos(cos)), nil
}

// clampCos keeps rounding noise from pushing a cosine outside acos' domain.
func clampCos(cos float64) float64 {
	return math.Max(-1, math.Min(1, cos))
}

// anchors returns two distinct points of the line, From first.
// Unbounded lines use the foot of the perpendicular from (0, 0) and the
// foot moved by the direction vector, so no viewport is involved.
func (l Line) anchors() (Point, Point, error) {
	if l.IsDegenerate() {
		return Point{}, Point{}, ErrDegenerateLine
	}
	if l.Kind != Unbounded {
		return l.From, l.To, nil
	}
	n := l.A*l.A + l.B*l.B
	foot := Point{X: -l.A * l.C / n, Y: -l.B * l.C / n}
	return foot, foot.Add(l.Direction()), nil
}

// Origin returns the starting point of the line: From, or the foot of the
// perpendicular from (0, 0) for unbounded lines.
func (l Line) Origin() (Point, error) {
	from, _, err := l.anchors()
	return from, err
}

// RotatedByAngle rotates the line around From by -angle.
func (l Line) RotatedByAngle(angle float64) (Line, error) {
	from, to, err := l.anchors()
	if err != nil {
		return Line{}, err
	}
	return rebuild(from, to.RotatedAround(from, -angle), l.Kind), nil
}

// Invert returns the same line with the opposite direction.
func (l Line) Invert() (Line, error) {
	from, to, err := l.anchors()
	if err != nil {
		return Line{}, err
	}
	return rebuild(to, from, l.Kind), nil
}

// MovedTo returns the parallel line through p, with C = -A*p.X - B*p.Y.
// Segments and rays are translated so that From becomes p.
func (l Line) MovedTo(p Point) Line {
	if l.Kind == Unbounded {
		return NewLineABC(l.A, l.B, -l.A*p.X-l.B*p.Y)
	}
	return rebuild(p, l.To.Add(p.Sub(l.From)), l.Kind)
}

// Reflect rotates l, acting as a tangent, by its angle with incoming.
func (l Line) Reflect(incoming Line) (Line, error) {
	angle, err := l.AngleBetween(incoming)
	if err != nil {
		return Line{}, err
	}
	return l.RotatedByAngle(angle)
}

// SameRangeAs reports whether p falls within the extent of the line:
// the bounding box of a segment, the forward half-plane of a ray,
// anywhere for an unbounded line.
func (l Line) SameRangeAs(p Point) bool {
	switch l.Kind {
	case Segment:
		// From and To are not ordered, so check against the min/max corners.
		minX, maxX := math.Min(l.From.X, l.To.X), math.Max(l.From.X, l.To.X)
		minY, maxY := math.Min(l.From.Y, l.To.Y), math.Max(l.From.Y, l.To.Y)
		return p.X >= minX-Epsilon && p.X <= maxX+Epsilon &&
			p.Y >= minY-Epsilon && p.Y <= maxY+Epsilon
	case Ray:
		dir := l.To.Sub(l.From)
		return p.Sub(l.From).Dot(dir) >= -Epsilon*dir.Len()
	default:
		return true
	}
}

// pointAtY returns the point of the line at height y. A must not be zero.
func (l Line) pointAtY(y float64) Point {
	return Point{X: (-l.B*y - l.C) / l.A, Y: y}
}

// DefaultEndpoints returns where the infinite line crosses the viewport edges.
// Horizontal lines span x = 0 to x = Width. Otherwise the crossings with
// y = 0 and y = Height are used and From is the one at y = Height when A > 0,
// at y = 0 when A < 0.
func (l Line) DefaultEndpoints(vp Viewport) (Point, Point, error) {
	if l.IsDegenerate() {
		return Point{}, Point{}, ErrDegenerateLine
	}
	if l.A == 0 {
		y := -l.C / l.B
		return Point{X: 0, Y: y}, Point{X: vp.Width, Y: y}, nil
	}
	if l.A < 0 {
		return l.pointAtY(0), l.pointAtY(vp.Height), nil
	}
	return l.pointAtY(vp.Height), l.pointAtY(0), nil
}

// Endpoints returns the two points used to draw the line in vp.
// Segments return their own endpoints; rays are clipped to the viewport
// (and fall back to From, To when they never cross it); unbounded lines use
// DefaultEndpoints.
func (l Line) Endpoints(vp Viewport) (Point, Point, error) {
	switch l.Kind {
	case Segment:
		return l.From, l.To, nil
	case Ray:
		if l.IsDegenerate() {
			return Point{}, Point{}, ErrDegenerateLine
		}
		if from, to, ok := vp.ClipRay(l.From, l.To.Sub(l.From)); ok {
			return from, to, nil
		}
		return l.From, l.To, nil
	default:
		return l.DefaultEndpoints(vp)
	}
}
