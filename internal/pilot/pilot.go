// Package pilot turns abstract flight controls into camera mutations.
//
// Movement is in the camera's own frame. Turning left and right spins about
// the world up axis and looking up and down tilts about the camera's right
// axis, so the horizon stays level unless the camera is rolled explicitly.
package pilot

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/quatcam"
)

type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	TurnLeft
	TurnRight
	LookUp
	LookDown
	RollLeft
	RollRight
	Reset
)

var actionNames = map[Action]string{
	MoveForward: "forward",
	MoveBack:    "back",
	MoveLeft:    "left",
	MoveRight:   "right",
	MoveUp:      "up",
	MoveDown:    "down",
	TurnLeft:    "turn-left",
	TurnRight:   "turn-right",
	LookUp:      "look-up",
	LookDown:    "look-down",
	RollLeft:    "roll-left",
	RollRight:   "roll-right",
	Reset:       "reset",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Pilot applies actions to a camera. Step is the distance moved and Turn
// the angle in radians turned per application.
type Pilot struct {
	Camera *quatcam.Camera
	Step   float64
	Turn   float64

	homePos mgl64.Vec3
	homeRot mgl64.Quat
}

// New returns a pilot for cam. Reset returns cam to the pose it has now.
func New(cam *quatcam.Camera, step, turn float64) *Pilot {
	return &Pilot{
		Camera: cam,
		Step:   step,
		Turn:   turn,

		homePos: cam.Position(),
		homeRot: cam.Orientation(),
	}
}

// Apply performs a once, scaled by scale: the frame time for held keys or
// 1 for discrete key presses.
func (p *Pilot) Apply(a Action, scale float64) {
	step := p.Step * scale
	turn := p.Turn * scale
	cam := p.Camera

	switch a {
	case MoveForward:
		cam.Translate(0, 0, -step)
	case MoveBack:
		cam.Translate(0, 0, step)
	case MoveLeft:
		cam.Translate(-step, 0, 0)
	case MoveRight:
		cam.Translate(step, 0, 0)
	case MoveUp:
		cam.Translate(0, step, 0)
	case MoveDown:
		cam.Translate(0, -step, 0)
	case TurnLeft:
		cam.AddYaw(-turn)
	case TurnRight:
		cam.AddYaw(turn)
	case LookUp:
		cam.RotateAxis(-turn, cam.Right())
	case LookDown:
		cam.RotateAxis(turn, cam.Right())
	case RollLeft:
		cam.RotateAxis(turn, cam.Forward())
	case RollRight:
		cam.RotateAxis(-turn, cam.Forward())
	case Reset:
		cam.SetPosition(p.homePos)
		cam.SetOrientation(p.homeRot)
	}
}

// Drag turns the camera for a pointer movement of dx, dy screen units.
func (p *Pilot) Drag(dx, dy, sensitivity float64) {
	if dx != 0 {
		p.Camera.AddYaw(dx * sensitivity)
	}
	if dy != 0 {
		p.Camera.RotateAxis(dy*sensitivity, p.Camera.Right())
	}
}
