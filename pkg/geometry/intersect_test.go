package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOnBoth checks that every point lies on the line, on the circle and in range.
func assertOnBoth(t *testing.T, line Line, circle Circle, points []Point) {
	t.Helper()
	assert.LessOrEqual(t, len(points), 2)
	for _, p := range points {
		assert.InDelta(t, 0, line.DistanceTo(p), Epsilon, "%v not on %v", p, line)
		assert.InDelta(t, circle.Radius, p.DistanceTo(circle.Center), Epsilon, "%v not on %v", p, circle)
		assert.True(t, line.SameRangeAs(p), "%v out of range of %v", p, line)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want []Point
	}{
		{"Ray secant", NewRay(Point{100, 400}, Point{300, 300}), []Point{{460, 220}, {300, 300}}},
		{"Segment keeps the part in range", NewLine(Point{100, 400}, Point{300, 300}), []Point{{300, 300}}},
		{"Unbounded secant", NewLineABC(0, 1, -300), []Point{{500, 300}, {300, 300}}},
		{"Vertical", NewLineABC(1, 0, -400), []Point{{400, 400}, {400, 200}}},
		{"Horizontal tangent", NewLine(Point{0, 200}, Point{800, 200}), []Point{{400, 200}}},
		{"Vertical tangent", NewRay(Point{500, 0}, Point{500, 600}), []Point{{500, 300}}},
		{"Diagonal tangent", NewLineABC(1, 1, -700-100*math.Sqrt2), []Point{{400 + 100/math.Sqrt2, 300 + 100/math.Sqrt2}}},
		{"Far line", NewLine(Point{0, 150}, Point{800, 150}), nil},
		{"Ray pointing away", NewRay(Point{100, 300}, Point{0, 300}), nil},
		{"Degenerate", NewLine(Point{1, 1}, Point{1, 1}), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.line, demoCircle)
			require.Len(t, got, len(tt.want), "got %v", got)
			for i := range tt.want {
				assert.True(t, got[i].Eq(tt.want[i]), "point %d = %v; want %v", i, got[i], tt.want[i])
			}
			assertOnBoth(t, tt.line, demoCircle, got)
		})
	}
}

func TestIntersect_Deterministic(t *testing.T) {
	line := NewRay(Point{37.5, 512.25}, Point{640, 80})
	first := Intersect(line, demoCircle)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Intersect(line, demoCircle))
	}
}

func TestIntersect_RandomLines(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	kinds := []Kind{Segment, Ray, Unbounded}
	for i := 0; i < 5000; i++ {
		p := Point{rng.Float64() * 800, rng.Float64() * 600}
		q := Point{rng.Float64() * 800, rng.Float64() * 600}
		circle := NewCircle(Point{100 + rng.Float64()*600, 100 + rng.Float64()*400}, 20+rng.Float64()*180)
		line := rebuild(p, q, kinds[i%len(kinds)])

		got := Intersect(line, circle)
		assertOnBoth(t, line, circle, got)

		d := line.DistanceTo(circle.Center)
		if line.Kind == Unbounded && d < circle.Radius-Epsilon {
			assert.Len(t, got, 2, "secant %v of %v", line, circle)
		}
		if d > circle.Radius+Epsilon {
			assert.Empty(t, got, "far line %v of %v", line, circle)
		}
	}
}

func BenchmarkIntersect(b *testing.B) {
	line := NewRay(Point{100, 400}, Point{300, 300})
	for i := 0; i < b.N; i++ {
		Intersect(line, demoCircle)
	}
}

func BenchmarkCircle_Hit(b *testing.B) {
	line := NewRay(Point{100, 400}, Point{300, 300})
	for i := 0; i < b.N; i++ {
		_, _ = demoCircle.Hit(line)
	}
}
