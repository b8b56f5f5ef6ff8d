package geometry

import "math"

// Intersect returns the points where line crosses circle, at most two.
//
// The line equation is substituted into the circle equation, giving a
// quadratic in y (used when |A| >= |B|) or in x; the other coordinate is
// back-substituted from the line. The number of roots is decided by comparing
// the distance of the centre to the line with the radius, within Epsilon, so a
// tangent line always yields exactly its foot point. Roots are ordered with the
// "+" branch first and kept only when line.SameRangeAs accepts them.
func Intersect(line Line, circle Circle) []Point {
	if line.IsDegenerate() {
		return nil
	}

	d := line.DistanceTo(circle.Center)
	r := circle.Radius
	var single bool
	switch {
	case math.Abs(d-r) <= Epsilon:
		single = true
	case d < r:
		single = false
	default:
		return nil
	}

	a, b, c := line.A, line.B, line.C
	x0, y0 := circle.Center.X, circle.Center.Y

	var candidates []Point
	if math.Abs(a) >= math.Abs(b) {
		qa := a*a + b*b
		qb := 2*b*c + 2*a*x0*b - 2*a*a*y0
		qc := c*c + 2*a*x0*c + a*a*x0*x0 + a*a*y0*y0 - a*a*r*r
		for _, y := range solveQuadratic(qa, qb, qc, single) {
			candidates = append(candidates, Point{X: (-b*y - c) / a, Y: y})
		}
	} else {
		qa := a*a + b*b
		qb := 2*a*c + 2*a*b*y0 - 2*b*b*x0
		qc := b*b*x0*x0 + c*c + 2*b*y0*c + b*b*y0*y0 - r*r*b*b
		for _, x := range solveQuadratic(qa, qb, qc, single) {
			candidates = append(candidates, Point{X: x, Y: (-a*x - c) / b})
		}
	}

	out := make([]Point, 0, len(candidates))
	for _, p := range candidates {
		if line.SameRangeAs(p) {
			out = append(out, p)
		}
	}
	return out
}

// solveQuadratic returns the real roots of qa*t² + qb*t + qc = 0.
// single returns the double root -qb / 2qa only.
func solveQuadratic(qa, qb, qc float64, single bool) []float64 {
	if single {
		return []float64{-qb / (2 * qa)}
	}
	// the distance test already decided there are two roots
	discr := math.Max(qb*qb-4*qa*qc, 0)
	s := math.Sqrt(discr)
	return []float64{(-qb + s) / (2 * qa), (-qb - s) / (2 * qa)}
}
