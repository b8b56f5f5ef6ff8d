package scene

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vp = geometry.Viewport{Width: 800, Height: 600}

func TestScene_ComputeDefault(t *testing.T) {
	s := New(DefaultConfig())
	f := s.Compute(vp)

	require.NoError(t, f.Err)
	assert.True(t, f.Reflected())
	assert.Len(t, f.Hit.Points, 2)
	assert.True(t, f.Hit.Nearest.Eq(geometry.Point{X: 300, Y: 300}), "nearest %s", f.Hit.Nearest)
	for _, p := range f.Hit.Points {
		assert.True(t, vp.Contains(p), "%s outside viewport", p)
	}
	assert.Equal(t, geometry.Ray, f.Incoming.Kind)
	assert.Equal(t, geometry.Ray, f.Hit.Reflected.Kind)
	assert.True(t, f.Hit.Reflected.From.Eq(f.Hit.Nearest))
	assert.Len(t, f.Handles, 3)
	assert.Contains(t, f.Status(), "reflected at")
}

func TestScene_ComputeNoReflection(t *testing.T) {
	tests := []struct {
		name   string
		center geometry.Point
		target geometry.Point
		want   error
		points int
	}{
		{"origin inside", geometry.Point{X: 150, Y: 400}, geometry.Point{X: 300, Y: 300}, geometry.ErrOriginInside, 1},
		{"miss", geometry.Point{X: 400, Y: 300}, geometry.Point{X: 300, Y: 500}, geometry.ErrNoIntersection, 0},
		{"degenerate", geometry.Point{X: 400, Y: 300}, geometry.Point{X: 100, Y: 400}, geometry.ErrDegenerateLine, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultConfig())
			s.Center.Pos = tt.center
			s.Target.Pos = tt.target

			f := s.Compute(vp)
			assert.ErrorIs(t, f.Err, tt.want)
			assert.False(t, f.Reflected())
			assert.Len(t, f.Hit.Points, tt.points)
			assert.NotEmpty(t, f.Status())
		})
	}
}

func TestScene_DragAndReset(t *testing.T) {
	s := New(DefaultConfig())

	s.Update(handle.Input{Pointer: geometry.Point{X: 302, Y: 298}, Pressed: true})
	require.True(t, s.Target.Dragging)
	s.Update(handle.Input{Pointer: geometry.Point{X: 250, Y: 250}})
	s.Update(handle.Input{Pointer: geometry.Point{X: 250, Y: 250}, Released: true})
	assert.False(t, s.Target.Dragging)
	assert.Equal(t, geometry.Point{X: 250, Y: 250}, s.Target.Pos)

	s.Radius = 50
	s.Reset()
	assert.Equal(t, geometry.Point{X: 300, Y: 300}, s.Target.Pos)
	assert.Equal(t, 100.0, s.Radius)
}

func TestScene_HandleOnCircleOutline(t *testing.T) {
	// the target sits on the circle: the press must grab it rather than the center
	cfg := DefaultConfig()
	cfg.CircleRadius = 10
	s := New(cfg)
	s.Target.Pos = geometry.Point{X: 410, Y: 300}

	s.Update(handle.Input{Pointer: geometry.Point{X: 405, Y: 300}, Pressed: true})
	assert.True(t, s.Target.Dragging)
	assert.False(t, s.Center.Dragging)
}

type call struct {
	op  string
	clr color.Color
}

type recordingCanvas struct {
	calls []call
	texts []string
}

func (c *recordingCanvas) Clear(clr color.Color) {
	c.calls = append(c.calls, call{"clear", clr})
}

func (c *recordingCanvas) DrawCircle(center geometry.Point, radius float64, clr color.Color) {
	c.calls = append(c.calls, call{fmt.Sprintf("dot %s", center), clr})
}

func (c *recordingCanvas) DrawLine(p1, p2 geometry.Point, thickness float64, clr color.Color) {
	c.calls = append(c.calls, call{"line", clr})
}

func (c *recordingCanvas) DrawPolylineCircle(center geometry.Point, radius float64, segments int, thickness float64, clr color.Color) {
	c.calls = append(c.calls, call{fmt.Sprintf("circle %d", segments), clr})
}

func (c *recordingCanvas) DrawText(s string, x, y, size float64, clr color.Color) {
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) count(prefix string, clr color.Color) int {
	n := 0
	for _, cl := range c.calls {
		if strings.HasPrefix(cl.op, prefix) && (clr == nil || cl.clr == clr) {
			n++
		}
	}
	return n
}

func TestFrame_DrawReflected(t *testing.T) {
	cfg := DefaultConfig()
	style := NewStyle(cfg)
	f := New(cfg).Compute(vp)

	c := &recordingCanvas{}
	f.Draw(c, style)

	require.NotEmpty(t, c.calls)
	assert.Equal(t, "clear", c.calls[0].op)
	assert.Equal(t, 1, c.count("circle 255", style.Circle))
	assert.Equal(t, 1, c.count("line", style.Reflected))
	assert.Equal(t, 1, c.count("line", style.Tangent))
	assert.Equal(t, 1, c.count("line", style.Radius))
	assert.Equal(t, 2, c.count("dot", style.Intersection))
	assert.Equal(t, 1, c.count("dot (300.00, 300.00)", style.Nearest))
	assert.Equal(t, 3, c.count("dot", style.Handle))
	assert.Equal(t, []string{f.Status()}, c.texts)
}

func TestFrame_DrawToggles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowTangent = false
	cfg.ShowRadius = false
	cfg.ShowIntersections = false
	cfg.ShowHandles = false
	style := NewStyle(cfg)

	c := &recordingCanvas{}
	New(cfg).Compute(vp).Draw(c, style)

	assert.Equal(t, 0, c.count("line", style.Tangent))
	assert.Equal(t, 0, c.count("line", style.Radius))
	assert.Equal(t, 0, c.count("dot", nil))
	assert.Equal(t, 1, c.count("line", style.Reflected))
}

func TestFrame_DrawMiss(t *testing.T) {
	cfg := DefaultConfig()
	style := NewStyle(cfg)
	s := New(cfg)
	s.Target.Pos = geometry.Point{X: 300, Y: 500}

	c := &recordingCanvas{}
	s.Compute(vp).Draw(c, style)

	assert.Equal(t, 1, c.count("line", style.Line))
	assert.Equal(t, 0, c.count("line", style.Reflected))
	assert.Equal(t, 0, c.count("dot", style.Nearest))
	assert.Equal(t, []string{"ray misses the circle"}, c.texts)
}
