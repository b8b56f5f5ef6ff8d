package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a simple UI widget
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64

	// active is set while a press that started on the slider is held
	active bool
}

// NewSlider creates a slider, value is clamped to [min, max].
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: w, H: 12}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Update moves the value to the pointer while the button is held on the slider.
func (s *Slider) Update(p Pointer) {
	if p.Pressed && p.In(s.X, s.Y, s.W, s.H) {
		s.active = true
	}
	if !p.Down {
		s.active = false
	}
	if s.active && s.W > 0 {
		ratio := (p.X - s.X) / s.W
		s.Value = s.clamp(s.Min + ratio*(s.Max-s.Min))
	}
}

// Active reports whether the slider is being dragged.
func (s *Slider) Active() bool {
	return s.active
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.0f", s.Label, s.Value), int(s.X), int(s.Y-16))

	// Draw Background (Dark Gray)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	// Draw Value Bar (Light Gray/White)
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
