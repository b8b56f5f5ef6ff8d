package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	golog "github.com/tochemey/goakt/v3/log"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lao-tseu-is-alive/go-ray-reflection/internal/game"
	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/scene"
)

var (
	configFile = kingpin.Flag("config", "JSON scene configuration file.").Short('c').ExistingFile()
	quiet      = kingpin.Flag("quiet", "Discard log output.").Short('q').Bool()
)

func main() {
	kingpin.Parse()

	var logger golog.Logger = golog.DefaultLogger
	if *quiet {
		logger = golog.DiscardLogger
	}

	cfg := scene.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = scene.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
		logger.Infof("loaded %s", *configFile)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game.New(cfg, logger)); err != nil {
		log.Fatal(err)
	}
}
