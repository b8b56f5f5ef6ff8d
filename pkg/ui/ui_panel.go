package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	margin        = 10.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update(p Pointer)
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// place moves the widget to the top of its row.
	place(y float64)
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

func (s *SliderWrapper) place(y float64) {
	s.Y = y + 16
}

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 8 // Checkbox size + small margin
}

func (c *CheckboxWrapper) place(y float64) {
	c.Y = y
}

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 8
}

func (b *ButtonWrapper) place(y float64) {
	b.Y = y
}

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Title         string
	Widgets       []UIWidget
	ScrollOffset  float64 // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
	SectionBG   color.RGBA

	// Section headers
	sections []PanelSection
}

// PanelSection is a titled group of consecutive widgets.
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
}

// NewUIPanel creates a new UI panel
func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       "Configuration",
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		SectionBG:   color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// AddSection starts a new section; the following widgets belong to it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+margin, 0, p.Width-2*margin, label, min, max, value)
	p.add(&SliderWrapper{slider})
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+margin, 0, label, value)
	p.add(&CheckboxWrapper{checkbox})
	return checkbox
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+margin, 0, p.Width-2*margin, 24, label, onClick)
	p.add(&ButtonWrapper{button})
	return button
}

func (p *UIPanel) add(w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.layout()
}

// Contains reports whether (x, y) is over the panel.
func (p *UIPanel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// layout places every widget below its section header, shifted by the scroll
// offset, and returns the y of each section header.
func (p *UIPanel) layout() []float64 {
	headers := make([]float64, len(p.sections))
	y := p.Y + titleHeight - p.ScrollOffset
	next := 0
	for i, w := range p.Widgets {
		for next < len(p.sections) && p.sections[next].StartIndex == i {
			headers[next] = y
			y += sectionHeight
			next++
		}
		w.place(y)
		y += w.GetHeight()
	}
	// trailing sections without widgets
	for ; next < len(p.sections); next++ {
		headers[next] = y
		y += sectionHeight
	}
	return headers
}

// visible reports whether a row starting at y is fully inside the panel.
func (p *UIPanel) visible(y, h float64) bool {
	return y >= p.Y+titleHeight-1 && y+h <= p.Y+p.Height
}

// Update handles input for all widgets
func (p *UIPanel) Update(ptr Pointer) {
	// Handle scroll
	if ptr.WheelY != 0 && p.Contains(ptr.X, ptr.Y) {
		p.ScrollOffset -= ptr.WheelY * 20

		// Clamp scroll
		maxScroll := p.calculateTotalHeight() - p.Height
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.ScrollOffset < 0 {
			p.ScrollOffset = 0
		}
		if p.ScrollOffset > maxScroll {
			p.ScrollOffset = maxScroll
		}
	}
	p.layout()

	// hidden widgets only see releases
	hidden := ptr
	hidden.Pressed = false
	for _, w := range p.Widgets {
		if p.visible(rowTop(w), w.GetHeight()) {
			w.Update(ptr)
		} else {
			w.Update(hidden)
		}
	}
}

// rowTop is the y where the widget row starts.
func rowTop(w UIWidget) float64 {
	switch w := w.(type) {
	case *SliderWrapper:
		return w.Y - 16
	case *CheckboxWrapper:
		return w.Y
	case *ButtonWrapper:
		return w.Y
	}
	return 0
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	headers := p.layout()

	// Draw panel background
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	// Draw border
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	// Draw title
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+margin), int(p.Y+5))

	for i, section := range p.sections {
		if !p.visible(headers[i], sectionHeight) {
			continue
		}
		vector.FillRect(screen,
			float32(p.X+5), float32(headers[i]),
			float32(p.Width-10), 20,
			p.SectionBG, true)
		ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+margin), int(headers[i]+2))
	}

	for _, w := range p.Widgets {
		if p.visible(rowTop(w), w.GetHeight()) {
			w.Draw(screen)
		}
	}
}

// calculateTotalHeight calculates the total content height
func (p *UIPanel) calculateTotalHeight() float64 {
	height := titleHeight

	// Add section headers
	height += float64(len(p.sections)) * sectionHeight

	// Add all widgets
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}

	return height
}
