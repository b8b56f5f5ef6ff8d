package scene

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
)

// Canvas is the set of primitives a frame is drawn with.
type Canvas interface {
	Clear(clr color.Color)
	DrawCircle(center geometry.Point, radius float64, clr color.Color)
	DrawLine(p1, p2 geometry.Point, thickness float64, clr color.Color)
	DrawPolylineCircle(center geometry.Point, radius float64, segments int, thickness float64, clr color.Color)
	DrawText(s string, x, y, size float64, clr color.Color)
}

// Style holds colors, sizes and visibility toggles used by Frame.Draw.
type Style struct {
	Background   color.RGBA
	Circle       color.RGBA
	Line         color.RGBA
	Tangent      color.RGBA
	Radius       color.RGBA
	Reflected    color.RGBA
	Intersection color.RGBA
	Nearest      color.RGBA
	Handle       color.RGBA
	HandleActive color.RGBA
	Text         color.RGBA

	Thickness float64
	Segments  int
	DotRadius float64
	TextSize  float64

	ShowTangent       bool
	ShowRadius        bool
	ShowIntersections bool
	ShowHandles       bool
}

// NewStyle returns the default palette with the sizes and toggles of cfg.
func NewStyle(cfg *Config) Style {
	return Style{
		Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Circle:       color.RGBA{A: 255},
		Line:         color.RGBA{A: 255},
		Tangent:      color.RGBA{R: 130, G: 130, B: 130, A: 255},
		Radius:       color.RGBA{R: 80, G: 80, B: 80, A: 255},
		Reflected:    color.RGBA{R: 0, G: 150, B: 60, A: 255},
		Intersection: color.RGBA{R: 0, G: 121, B: 241, A: 255},
		Nearest:      color.RGBA{R: 230, G: 41, B: 55, A: 255},
		Handle:       color.RGBA{R: 255, G: 161, B: 0, A: 255},
		HandleActive: color.RGBA{R: 200, G: 60, B: 0, A: 255},
		Text:         color.RGBA{R: 80, G: 80, B: 80, A: 255},

		Thickness: cfg.LineThickness,
		Segments:  cfg.CircleSegments,
		DotRadius: 6,
		TextSize:  20,

		ShowTangent:       cfg.ShowTangent,
		ShowRadius:        cfg.ShowRadius,
		ShowIntersections: cfg.ShowIntersections,
		ShowHandles:       cfg.ShowHandles,
	}
}

// Draw renders the frame on canvas.
func (f Frame) Draw(canvas Canvas, style Style) {
	canvas.Clear(style.Background)
	canvas.DrawPolylineCircle(f.Circle.Center, f.Circle.Radius, style.Segments, style.Thickness, style.Circle)

	if f.Reflected() {
		f.drawReflection(canvas, style)
	} else if from, to, err := f.Incoming.Endpoints(f.Viewport); err == nil {
		canvas.DrawLine(from, to, style.Thickness, style.Line)
	}

	if style.ShowIntersections {
		for _, p := range f.Hit.Points {
			canvas.DrawCircle(p, style.DotRadius, style.Intersection)
		}
		if f.Reflected() {
			canvas.DrawCircle(f.Hit.Nearest, style.DotRadius, style.Nearest)
		}
	}

	if style.ShowHandles {
		for _, h := range f.Handles {
			clr := style.Handle
			if h.Dragging || h.Hovered {
				clr = style.HandleActive
			}
			canvas.DrawCircle(h.Pos, style.DotRadius+2, clr)
			if h.Hovered {
				hit := h.HitCircle()
				canvas.DrawPolylineCircle(hit.Center, hit.Radius, 24, 1, clr)
			}
		}
	}

	canvas.DrawText(f.Status(), 20, f.Viewport.Height-20, style.TextSize, style.Text)
}

func (f Frame) drawReflection(canvas Canvas, style Style) {
	// incoming ray stops where it hits the circle
	canvas.DrawLine(f.Incoming.From, f.Hit.Nearest, style.Thickness, style.Line)

	if style.ShowRadius {
		canvas.DrawLine(f.Hit.Radius.From, f.Hit.Radius.To, style.Thickness/2, style.Radius)
	}
	if style.ShowTangent {
		// the tangent segment is only a radius long: draw the whole line across the viewport
		full := geometry.NewLineABC(f.Hit.Tangent.A, f.Hit.Tangent.B, f.Hit.Tangent.C)
		if from, to, err := full.DefaultEndpoints(f.Viewport); err == nil {
			if from, to, ok := f.Viewport.ClipSegment(from, to); ok {
				canvas.DrawLine(from, to, style.Thickness/2, style.Tangent)
			}
		}
	}
	if from, to, err := f.Hit.Reflected.Endpoints(f.Viewport); err == nil {
		canvas.DrawLine(from, to, style.Thickness, style.Reflected)
	}
}
