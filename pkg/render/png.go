package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/scene"
)

var _ scene.Canvas = (*PNG)(nil)

// PNG draws into an in-memory RGBA image through a gg context.
type PNG struct {
	dc *gg.Context
}

// NewPNG creates a width x height transparent canvas.
func NewPNG(width, height int) *PNG {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &PNG{dc: dc}
}

func (p *PNG) Clear(clr color.Color) {
	p.dc.SetColor(clr)
	p.dc.Clear()
}

func (p *PNG) DrawCircle(center geometry.Point, radius float64, clr color.Color) {
	p.dc.DrawCircle(center.X, center.Y, radius)
	p.dc.SetColor(clr)
	p.dc.Fill()
}

func (p *PNG) DrawLine(p1, p2 geometry.Point, thickness float64, clr color.Color) {
	p.dc.SetColor(clr)
	p.dc.SetLineWidth(thickness)
	p.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	p.dc.Stroke()
}

func (p *PNG) DrawPolylineCircle(center geometry.Point, radius float64, segments int, thickness float64, clr color.Color) {
	pts := geometry.NewCircle(center, radius).Polygon(segments)
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
	p.dc.SetColor(clr)
	p.dc.SetLineWidth(thickness)
	p.dc.Stroke()
}

// DrawText draws s with its baseline at y.
func (p *PNG) DrawText(s string, x, y, size float64, clr color.Color) {
	scale := size / baseFontSize
	p.dc.Push()
	defer p.dc.Pop()
	p.dc.Translate(x, y)
	p.dc.Scale(scale, scale)
	p.dc.SetColor(clr)
	p.dc.DrawString(s, 0, 0)
}

// Image returns the image drawn so far.
func (p *PNG) Image() image.Image {
	return p.dc.Image()
}

// SavePNG writes the image to path.
func (p *PNG) SavePNG(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
