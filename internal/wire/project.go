package wire

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultNear = 0.1
	DefaultFovY = math.Pi / 3
)

// Segment is a projected edge in screen coordinates, y pointing down.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
	// Depth is the mean distance of the clipped edge in front of the eye.
	Depth float64
	Color color.RGBA
}

// Projector maps camera space, looking down -Z, onto a screen.
type Projector struct {
	Width, Height float64
	// FovY is the vertical field of view in radians.
	FovY float64
	Near float64
	// CellAspect is the height of one screen unit over its width; 1 for
	// square pixels, about 2 for terminal cells.
	CellAspect float64
}

func NewProjector(width, height int, fovY float64) *Projector {
	return &Projector{
		Width:      float64(width),
		Height:     float64(height),
		FovY:       fovY,
		Near:       DefaultNear,
		CellAspect: 1,
	}
}

// Resize updates the screen size, keeping the field of view.
func (p *Projector) Resize(width, height int) {
	p.Width = float64(width)
	p.Height = float64(height)
}

// focal is the distance from the eye to the image plane in horizontal
// screen units.
func (p *Projector) focal() float64 {
	return (p.Height * p.CellAspect / 2) / math.Tan(p.FovY/2)
}

// ToScreen projects a camera-space point. The point must be in front of
// the eye.
func (p *Projector) ToScreen(v mgl64.Vec3) (float64, float64) {
	depth := -v[2]
	f := p.focal()
	sx := p.Width/2 + f*v[0]/depth
	sy := p.Height/2 - f*v[1]/depth/p.CellAspect
	return sx, sy
}

// FromScreen returns the camera-space x and y that project to (sx, sy) at
// the given depth in front of the eye.
func (p *Projector) FromScreen(sx, sy, depth float64) (float64, float64) {
	f := p.focal()
	x := (sx - p.Width/2) * depth / f
	y := -(sy - p.Height/2) * p.CellAspect * depth / f
	return x, y
}

// ProjectSegment clips the camera-space edge a-b against the near plane and
// projects what is left. It reports false when the whole edge is behind it.
func (p *Projector) ProjectSegment(a, b mgl64.Vec3) (Segment, bool) {
	a, b, ok := clipNear(a, b, p.Near)
	if !ok {
		return Segment{}, false
	}
	x0, y0 := p.ToScreen(a)
	x1, y1 := p.ToScreen(b)
	return Segment{
		X0: x0, Y0: y0,
		X1: x1, Y1: y1,
		Depth: -(a[2] + b[2]) / 2,
	}, true
}

// clipNear trims the edge a-b to the part at least near in front of the
// eye.
func clipNear(a, b mgl64.Vec3, near float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	da, db := -a[2], -b[2]
	if da < near && db < near {
		return a, b, false
	}
	if da >= near && db >= near {
		return a, b, true
	}
	t := (near - da) / (db - da)
	cut := a.Add(b.Sub(a).Mul(t))
	cut[2] = -near
	if da < near {
		return cut, b, true
	}
	return a, cut, true
}
