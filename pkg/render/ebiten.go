// Package render implements the scene drawing primitives on a live Ebiten
// screen and on an in-memory image that can be saved as PNG.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/scene"
)

// basicfont glyphs are 13px high, text sizes are relative to that.
const baseFontSize = 13.0

var _ scene.Canvas = (*Ebiten)(nil)

// Ebiten draws on an ebiten image, usually the screen passed to Game.Draw.
type Ebiten struct {
	screen *ebiten.Image
	face   *text.GoXFace
}

// NewEbiten wraps screen. The value is cheap and can be created every frame.
func NewEbiten(screen *ebiten.Image) *Ebiten {
	return &Ebiten{screen: screen, face: text.NewGoXFace(basicfont.Face7x13)}
}

func (e *Ebiten) Clear(clr color.Color) {
	e.screen.Fill(clr)
}

func (e *Ebiten) DrawCircle(center geometry.Point, radius float64, clr color.Color) {
	vector.FillCircle(e.screen, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (e *Ebiten) DrawLine(p1, p2 geometry.Point, thickness float64, clr color.Color) {
	vector.StrokeLine(e.screen,
		float32(p1.X), float32(p1.Y),
		float32(p2.X), float32(p2.Y),
		float32(thickness), clr, true)
}

// DrawPolylineCircle strokes the regular polygon with segments sides inscribed in the circle.
func (e *Ebiten) DrawPolylineCircle(center geometry.Point, radius float64, segments int, thickness float64, clr color.Color) {
	pts := geometry.NewCircle(center, radius).Polygon(segments)
	for i, p := range pts {
		e.DrawLine(p, pts[(i+1)%len(pts)], thickness, clr)
	}
}

// DrawText draws s with its baseline at y.
func (e *Ebiten) DrawText(s string, x, y, size float64, clr color.Color) {
	scale := size / baseFontSize
	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -e.face.Metrics().HAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(e.screen, s, e.face, op)
}
