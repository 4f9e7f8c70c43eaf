// Command flycam flies a quaternion camera through a wireframe scene in a
// window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type config struct {
	width, height int
	fovDeg        float64
	speed         float64
	turnRate      float64
	debug         bool
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.width, "width", screenWidth, "window width in pixels")
	flag.IntVar(&cfg.height, "height", screenHeight, "window height in pixels")
	flag.Float64Var(&cfg.fovDeg, "fov", 60, "vertical field of view in degrees")
	flag.Float64Var(&cfg.speed, "speed", 6, "movement speed in units per second")
	flag.Float64Var(&cfg.turnRate, "turn", 90, "turn rate in degrees per second")
	flag.BoolVar(&cfg.debug, "debug", false, "log camera state every second")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Info("starting flycam",
		"width", cfg.width, "height", cfg.height, "fov", cfg.fovDeg)

	g := NewGame(cfg, logger)

	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetWindowTitle("flycam")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func fovRadians(cfg config) float64 {
	return mgl64.DegToRad(cfg.fovDeg)
}
