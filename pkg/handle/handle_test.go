package handle

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet() (*Set, *Handle, *Handle) {
	a := New("a", geometry.Point{X: 100, Y: 100})
	b := New("b", geometry.Point{X: 110, Y: 100}) // overlaps a
	return NewSet(a, b), a, b
}

func TestSet_Hover(t *testing.T) {
	s, a, b := newTestSet()

	s.Update(Input{Pointer: geometry.Point{X: 90, Y: 100}})
	assert.True(t, a.Hovered)
	assert.False(t, b.Hovered)

	s.Update(Input{Pointer: geometry.Point{X: 105, Y: 100}})
	assert.True(t, a.Hovered)
	assert.True(t, b.Hovered)

	s.Update(Input{Pointer: geometry.Point{X: 500, Y: 500}})
	assert.False(t, a.Hovered)
	assert.False(t, b.Hovered)
}

func TestSet_OnlyOneHandleGrabbed(t *testing.T) {
	s, a, b := newTestSet()

	s.Update(Input{Pointer: geometry.Point{X: 105, Y: 100}, Pressed: true})
	assert.True(t, a.Dragging, "first handle in order wins")
	assert.False(t, b.Dragging)
	assert.Same(t, a, s.Dragging())
}

func TestSet_DragFollowsPointer(t *testing.T) {
	s, a, b := newTestSet()

	s.Update(Input{Pointer: geometry.Point{X: 95, Y: 100}, Pressed: true})
	require.True(t, a.Dragging)

	s.Update(Input{Pointer: geometry.Point{X: 300, Y: 250}})
	assert.Equal(t, geometry.Point{X: 300, Y: 250}, a.Pos)
	assert.Equal(t, geometry.Point{X: 110, Y: 100}, b.Pos, "other handles stay put")

	s.Update(Input{Pointer: geometry.Point{X: 320, Y: 260}, Released: true})
	assert.False(t, a.Dragging)
	assert.Nil(t, s.Dragging())
	assert.Equal(t, geometry.Point{X: 300, Y: 250}, a.Pos, "released handle does not follow")

	s.Update(Input{Pointer: geometry.Point{X: 0, Y: 0}})
	assert.Equal(t, geometry.Point{X: 300, Y: 250}, a.Pos)
}

func TestSet_PressOutsideGrabsNothing(t *testing.T) {
	s, a, b := newTestSet()
	s.Update(Input{Pointer: geometry.Point{X: 400, Y: 400}, Pressed: true})
	assert.False(t, a.Dragging)
	assert.False(t, b.Dragging)
}

func TestSet_BlockedPress(t *testing.T) {
	s, a, _ := newTestSet()
	s.Update(Input{Pointer: geometry.Point{X: 100, Y: 100}, Pressed: true, Blocked: true})
	assert.True(t, a.Hovered)
	assert.False(t, a.Dragging)
}

func TestSet_Reset(t *testing.T) {
	s, a, _ := newTestSet()
	s.Update(Input{Pointer: geometry.Point{X: 100, Y: 100}, Pressed: true})
	s.Update(Input{Pointer: geometry.Point{X: 250, Y: 250}})
	require.Equal(t, geometry.Point{X: 250, Y: 250}, a.Pos)

	s.Reset()
	assert.Equal(t, geometry.Point{X: 100, Y: 100}, a.Pos)
	assert.False(t, a.Dragging)
	assert.Len(t, s.Handles(), 2)
}

func TestHandle_HitCircle(t *testing.T) {
	h := New("h", geometry.Point{X: 10, Y: 20})
	c := h.HitCircle()
	assert.Equal(t, h.Pos, c.Center)
	assert.Equal(t, HitRadius, c.Radius)

	h.Pos = geometry.Point{X: 50, Y: 60}
	assert.Equal(t, h.Pos, h.HitCircle().Center, "hit circle follows the position")
}
