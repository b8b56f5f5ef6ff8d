// Package game runs the reflection demo as an ebiten.Game: it reads the
// pointer, routes it to the settings panel and the handles, recomputes the
// frame and draws it.
package game

import (
	"fmt"
		"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/handle"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/render"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/scene"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/ui"
)

type Game struct {
	cfg    *scene.Config
	logger golog.Logger

	scene *scene.Scene
	style scene.Style
	vp    geometry.Viewport
	frame scene.Frame

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetRadius            *ui.Slider
	widgetShowTangent       *ui.Checkbox
	widgetShowRadius        *ui.Checkbox
	widgetShowIntersections *ui.Checkbox
	widgetShowHandles       *ui.Checkbox
	widgetLogFrames         *ui.Checkbox

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// New creates the game with its scene and settings panel from cfg.
func New(cfg *scene.Config, logger golog.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		scene:  scene.New(cfg),
		style:  scene.NewStyle(cfg),
		vp:     cfg.Viewport(),
	}

	panel := ui.NewUIPanel(10, 10, 240, 300)
	panel.Title = "Reflection"

	panel.AddSection("Circle")
	g.widgetRadius = panel.AddSlider("Radius", cfg.MinRadius, cfg.MaxRadius, cfg.CircleRadius)

	panel.AddSection("Display")
	g.widgetShowTangent = panel.AddCheckbox("Show tangent", cfg.ShowTangent)
	g.widgetShowRadius = panel.AddCheckbox("Show radius", cfg.ShowRadius)
	g.widgetShowIntersections = panel.AddCheckbox("Show intersections", cfg.ShowIntersections)
	g.widgetShowHandles = panel.AddCheckbox("Show handles", cfg.ShowHandles)
	g.widgetLogFrames = panel.AddCheckbox("Log frames", cfg.LogFrames)

	panel.AddSection("Handles")
	panel.AddButton("Reset", g.reset)
	g.panel = panel

	g.frame = g.scene.Compute(g.vp)
	logger.Infof("scene ready: %s, ray %s -> %s", g.frame.Circle, g.scene.Origin.Pos, g.scene.Target.Pos)
	return g
}

func (g *Game) reset() {
	g.scene.Reset()
	g.widgetRadius.Value = g.scene.Radius
	g.logger.Info("handles reset")
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	g.step(ui.Pointer{
		X:        float64(mx),
		Y:        float64(my),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		WheelY:   wheelY,
	})
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	return nil
}

// step runs one frame of input and recomputes the frame.
func (g *Game) step(ptr ui.Pointer) {
	// 1. Update UI Panel, it owns presses over it
	g.panel.Update(ptr)
	g.scene.Radius = g.widgetRadius.Value
	g.style.ShowTangent = g.widgetShowTangent.Value
	g.style.ShowRadius = g.widgetShowRadius.Value
	g.style.ShowIntersections = g.widgetShowIntersections.Value
	g.style.ShowHandles = g.widgetShowHandles.Value

	// 2. Handles
	dragging := g.scene.Handles().Dragging()
	g.scene.Update(handle.Input{
		Pointer:  geometry.Point{X: ptr.X, Y: ptr.Y},
		Pressed:  ptr.Pressed,
		Released: ptr.Released,
		Blocked:  g.panel.Contains(ptr.X, ptr.Y) || g.widgetRadius.Active(),
	})
	if h := g.scene.Handles().Dragging(); h != nil && h != dragging {
		g.logger.Debugf("dragging %s from %s", h.Name, h.Pos)
	}

	// 3. Geometry
	prev := g.frame
	g.frame = g.scene.Compute(g.vp)
	if prev.Reflected() != g.frame.Reflected() {
		g.logger.Infof("%s", g.frame.Status())
	}
	if g.widgetLogFrames.Value && (ptr.Pressed || ptr.Released) {
		g.logFrame()
	}
}

func (g *Game) logFrame() {
	f := g.frame
	g.logger.Infof("circle %s, incoming %s, %d intersection(s) %v", f.Circle, f.Incoming, len(f.Hit.Points), f.Hit.Points)
	if f.Err != nil {
		g.logger.Infof("no reflection: %v", f.Err)
		return
	}
	g.logger.Infof("nearest %s, tangent %s, reflected %s", f.Hit.Nearest, f.Hit.Tangent, f.Hit.Reflected)
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Scene
	g.frame.Draw(render.NewEbiten(screen), g.style)

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// Display timing breakdown for performance analysis
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	// debug text is white, give it the panel background
	x := float32(g.vp.Width) - 155
	vector.FillRect(screen, x, 5, 150, 75, g.panel.BGColor, true)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+5, 10)
}

// Layout follows the window size when the config allows resizing.
func (g *Game) Layout(w, h int) (int, int) {
	if !g.cfg.Resizable {
		return g.cfg.ScreenWidth, g.cfg.ScreenHeight
	}
	g.vp = geometry.NewViewport(w, h)
	return w, h
}
