// Command reflectshot renders one frame of the reflection scene to a PNG file
// without opening a window.
package main

import (
	"fmt"
	"log"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/render"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/scene"
)

// pointValue is a kingpin flag holding an "x,y" point.
type pointValue struct {
	p   geometry.Point
	set bool
}

func (v *pointValue) Set(s string) error {
	p, err := geometry.ParsePoint(s)
	if err != nil {
		return err
	}
	v.p, v.set = p, true
	return nil
}

func (v *pointValue) String() string {
	return v.p.String()
}

func pointFlag(name, help string) *pointValue {
	v := &pointValue{}
	kingpin.Flag(name, help).PlaceHolder("X,Y").SetValue(v)
	return v
}

var (
	configFile = kingpin.Flag("config", "JSON scene configuration file.").Short('c').ExistingFile()
	origin     = pointFlag("origin", "Ray origin.")
	target     = pointFlag("target", "Point the ray passes through.")
	center     = pointFlag("center", "Circle center.")
	radius     = kingpin.Flag("radius", "Circle radius, 0 keeps the configured one.").Float64()
	out        = kingpin.Flag("out", "Output PNG file.").Short('o').Default("reflection.png").String()
	noColor    = kingpin.Flag("no-color", "Plain text summary.").Bool()
)

func main() {
	kingpin.Parse()

	cfg := scene.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = scene.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if origin.set {
		cfg.RayOrigin = origin.p
	}
	if target.set {
		cfg.RayTarget = target.p
	}
	if center.set {
		cfg.CircleCenter = center.p
	}
	if *radius > 0 {
		cfg.CircleRadius = *radius
	}

	frame := scene.New(cfg).Compute(cfg.Viewport())
	canvas := render.NewPNG(cfg.ScreenWidth, cfg.ScreenHeight)
	frame.Draw(canvas, scene.NewStyle(cfg))
	if err := canvas.SavePNG(*out); err != nil {
		log.Fatal(err)
	}

	au := aurora.NewAurora(!*noColor)
	fmt.Printf("%s %s, ray %s -> %s\n", au.Bold("scene"), frame.Circle, cfg.RayOrigin, cfg.RayTarget)
	fmt.Printf("%s %v\n", au.Cyan("intersections"), frame.Hit.Points)
	if frame.Reflected() {
		fmt.Printf("%s %s\n", au.Green("reflected"), frame.Hit.Reflected)
	} else {
		fmt.Printf("%s %s\n", au.Red("no reflection"), frame.Status())
	}
	fmt.Printf("wrote %s\n", *out)
}
