// Command camterm flies a quaternion camera through a wireframe scene drawn
// in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/quatcam"
	"github.com/smasonuk/quatcam/internal/pilot"
	"github.com/smasonuk/quatcam/internal/wire"
)

const (
	frameInterval = 40 * time.Millisecond
	cellAspect    = 2.0
	minWidth      = 16
	minHeight     = 8
)

type config struct {
	fovDeg  float64
	step    float64
	turnDeg float64
	logFile string
}

func parseFlags() config {
	var cfg config
	flag.Float64Var(&cfg.fovDeg, "fov", 60, "vertical field of view in degrees")
	flag.Float64Var(&cfg.step, "step", 0.5, "distance moved per key press")
	flag.Float64Var(&cfg.turnDeg, "turn", 5, "degrees turned per key press")
	flag.StringVar(&cfg.logFile, "log", "", "write debug logs to this file")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	logger, closeLog, err := newLogger(cfg.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camterm: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("camterm failed", "err", err)
		fmt.Fprintf(os.Stderr, "camterm: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger logs to path at debug level, or discards everything when path
// is empty since stderr belongs to the screen.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

func run(cfg config, logger *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	cam := quatcam.NewCameraAt(mgl64.Vec3{0, 1, 12})
	p := pilot.New(cam, cfg.step, mgl64.DegToRad(cfg.turnDeg))
	scene := wire.NewDemoScene()

	w, h := s.Size()
	proj := wire.NewProjector(w, h-1, mgl64.DegToRad(cfg.fovDeg))
	proj.CellAspect = cellAspect

	// Only this goroutine touches the camera; input arrives over events.
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if a, ok := keyAction(ev); ok {
					p.Apply(a, 1)
					logger.Debug("key", "action", a.String(), "camera", cam.String())
					dirty = true
				}
			case *tcell.EventResize:
				w, h = s.Size()
				proj.Resize(w, h-1)
				s.Sync()
				dirty = true
			}
		case <-ticker.C:
			if !dirty {
				continue
			}
			dirty = false
			s.Clear()
			if w < minWidth || h < minHeight {
				drawText(s, 0, 0, tcell.StyleDefault, "window too small")
				s.Show()
				continue
			}
			for _, seg := range scene.Segments(cam, proj) {
				drawSegment(s, w, h-1, seg)
			}
			drawText(s, 0, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), statusLine(cam))
			s.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'x' || ev.Rune() == 'X'
	}
	return false
}

func keyAction(ev *tcell.EventKey) (pilot.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return pilot.LookUp, true
	case tcell.KeyDown:
		return pilot.LookDown, true
	case tcell.KeyLeft:
		return pilot.TurnLeft, true
	case tcell.KeyRight:
		return pilot.TurnRight, true
	case tcell.KeyRune:
		a, ok := runeActions[ev.Rune()]
		return a, ok
	}
	return 0, false
}

var runeActions = map[rune]pilot.Action{
	'w': pilot.MoveForward,
	's': pilot.MoveBack,
	'a': pilot.MoveLeft,
	'd': pilot.MoveRight,
	' ': pilot.MoveUp,
	'c': pilot.MoveDown,
	'q': pilot.RollLeft,
	'e': pilot.RollRight,
	'r': pilot.Reset,
}

func statusLine(cam *quatcam.Camera) string {
	return fmt.Sprintf("%s  wasd/space/c move  arrows look  q/e roll  r reset  x quit", cam.String())
}
