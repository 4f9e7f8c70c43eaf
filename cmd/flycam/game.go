package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/quatcam"
	"github.com/smasonuk/quatcam/internal/pilot"
	"github.com/smasonuk/quatcam/internal/wire"
)

const dragSensitivity = 1.0 / 200

var startEye = mgl64.Vec3{0, 1, 12}

// keyActions holds the keys polled every tick while held down.
var keyActions = []struct {
	key    ebiten.Key
	action pilot.Action
}{
	{ebiten.KeyW, pilot.MoveForward},
	{ebiten.KeyS, pilot.MoveBack},
	{ebiten.KeyA, pilot.MoveLeft},
	{ebiten.KeyD, pilot.MoveRight},
	{ebiten.KeySpace, pilot.MoveUp},
	{ebiten.KeyC, pilot.MoveDown},
	{ebiten.KeyArrowLeft, pilot.TurnLeft},
	{ebiten.KeyArrowRight, pilot.TurnRight},
	{ebiten.KeyArrowUp, pilot.LookUp},
	{ebiten.KeyArrowDown, pilot.LookDown},
	{ebiten.KeyQ, pilot.RollLeft},
	{ebiten.KeyE, pilot.RollRight},
}

type Game struct {
	camera    *quatcam.Camera
	pilot     *pilot.Pilot
	scene     *wire.Scene
	projector *wire.Projector
	logger    *slog.Logger

	width, height int
	showHUD       bool
	dragging      bool
	lastX, lastY  int
	ticks         int
}

func NewGame(cfg config, logger *slog.Logger) *Game {
	cam := quatcam.NewCameraAt(startEye)
	turn := mgl64.DegToRad(cfg.turnRate)

	logger.Debug("building scene")
	g := &Game{
		camera:    cam,
		pilot:     pilot.New(cam, cfg.speed, turn),
		scene:     wire.NewDemoScene(),
		projector: wire.NewProjector(cfg.width, cfg.height, fovRadians(cfg)),
		logger:    logger,
		width:     cfg.width,
		height:    cfg.height,
		showHUD:   true,
	}
	return g
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	for _, ka := range keyActions {
		if ebiten.IsKeyPressed(ka.key) {
			g.pilot.Apply(ka.action, dt)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.pilot.Apply(pilot.Reset, 1)
		g.logger.Info("camera reset", "camera", g.camera.String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.pilot.Drag(float64(x-g.lastX), float64(y-g.lastY), dragSensitivity)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	g.ticks++
	if g.ticks%ebiten.TPS() == 0 {
		g.logger.Debug("camera", "pose", g.camera.String(), "tps", ebiten.ActualTPS())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, seg := range g.scene.Segments(g.camera, g.projector) {
		drawLine(screen, seg)
	}

	if g.showHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\n%s\nWASD/Space/C move  arrows look  Q/E roll  R reset",
			ebiten.ActualFPS(), g.camera.String()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.projector.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func drawLine(screen *ebiten.Image, seg wire.Segment) {
	vector.StrokeLine(screen,
		float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1),
		1, seg.Color, false)
}
