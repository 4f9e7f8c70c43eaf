package wire

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewer is anything that can supply a view transform and an eye position.
type Viewer interface {
	ViewMatrix() mgl64.Mat4
	Position() mgl64.Vec3
}

type Object struct {
	Mesh     *Mesh
	Position mgl64.Vec3
}

// Scene is a list of meshes placed in world space.
type Scene struct {
	objects []*Object
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) AddObject(m *Mesh, x, y, z float64) *Object {
	obj := &Object{Mesh: m, Position: mgl64.Vec3{x, y, z}}
	s.objects = append(s.objects, obj)
	return obj
}

func (s *Scene) Objects() []*Object {
	return s.objects
}

// Segments projects every edge in the scene as seen by v. Objects further
// from the eye come first so callers can paint in order.
func (s *Scene) Segments(v Viewer, p *Projector) []Segment {
	view := v.ViewMatrix()
	eye := v.Position()

	sorted := make([]*Object, len(s.objects))
	copy(sorted, s.objects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.Sub(eye).Len() > sorted[j].Position.Sub(eye).Len()
	})

	var segments []Segment
	var camPoints []mgl64.Vec3
	for _, obj := range sorted {
		objToCam := view.Mul4(mgl64.Translate3D(obj.Position[0], obj.Position[1], obj.Position[2]))

		camPoints = camPoints[:0]
		for _, pt := range obj.Mesh.Points {
			camPoints = append(camPoints, objToCam.Mul4x1(pt.Vec4(1)).Vec3())
		}

		for _, e := range obj.Mesh.Edges {
			seg, ok := p.ProjectSegment(camPoints[e[0]], camPoints[e[1]])
			if !ok {
				continue
			}
			seg.Color = obj.Mesh.Color
			segments = append(segments, seg)
		}
	}
	return segments
}

// NewDemoScene returns the fly-through scene used by the demo binaries: a
// floor grid, world axes, a ring of cubes and a sphere.
func NewDemoScene() *Scene {
	s := NewScene()
	s.AddObject(NewGrid(40, 20, color.RGBA{R: 70, G: 70, B: 90, A: 255}), 0, -1, 0)
	s.AddObject(NewAxes(3, color.RGBA{R: 255, G: 255, B: 255, A: 255}), 0, -1, 0)

	cubeColors := []color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
	}
	for i, pos := range []mgl64.Vec3{{0, 0, -8}, {8, 0, 0}, {0, 0, 8}, {-8, 0, 0}} {
		s.AddObject(NewCube(2, cubeColors[i]), pos[0], pos[1], pos[2])
	}

	s.AddObject(NewUVSphere(2, 14, 8, color.RGBA{R: 0, G: 255, B: 255, A: 255}), 0, 3, -16)
	return s
}
