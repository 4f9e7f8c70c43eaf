package wire

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a set of points joined by straight edges.
type Mesh struct {
	Points     []mgl64.Vec3
	Edges      [][2]int
	Color      color.RGBA
	pointIndex map[mgl64.Vec3]int
	edgeIndex  map[[2]int]struct{}
}

// NewMesh returns an empty mesh. The zero Mesh is also ready to use.
func NewMesh(clr color.RGBA) *Mesh {
	return &Mesh{Color: clr}
}

// AddPoint returns the index of p, adding it if the mesh does not hold it yet.
func (m *Mesh) AddPoint(p mgl64.Vec3) int {
	if m.pointIndex == nil {
		m.pointIndex = make(map[mgl64.Vec3]int, len(m.Points))
		for i, q := range m.Points {
			if _, ok := m.pointIndex[q]; !ok {
				m.pointIndex[q] = i
			}
		}
	}
	if i, ok := m.pointIndex[p]; ok {
		return i
	}
	m.Points = append(m.Points, p)
	m.pointIndex[p] = len(m.Points) - 1
	return len(m.Points) - 1
}

// AddEdge joins a and b. Degenerate and duplicate edges are ignored.
func (m *Mesh) AddEdge(a, b mgl64.Vec3) {
	ia, ib := m.AddPoint(a), m.AddPoint(b)
	if ia == ib {
		return
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	key := [2]int{ia, ib}
	if m.edgeIndex == nil {
		m.edgeIndex = make(map[[2]int]struct{}, len(m.Edges))
		for _, e := range m.Edges {
			m.edgeIndex[e] = struct{}{}
		}
	}
	if _, ok := m.edgeIndex[key]; ok {
		return
	}
	m.edgeIndex[key] = struct{}{}
	m.Edges = append(m.Edges, key)
}

// Extents returns the size of the axis aligned box around the points.
func (m *Mesh) Extents() mgl64.Vec3 {
	if len(m.Points) == 0 {
		return mgl64.Vec3{}
	}
	lo, hi := m.Points[0], m.Points[0]
	for _, p := range m.Points[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}
	return hi.Sub(lo)
}

// NewCube returns a cube of the given edge length centred on the origin.
func NewCube(size float64, clr color.RGBA) *Mesh {
	m := NewMesh(clr)
	s := size / 2
	corners := [8]mgl64.Vec3{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
	}
	for i := 0; i < 4; i++ {
		m.AddEdge(corners[i], corners[(i+1)%4])
		m.AddEdge(corners[i+4], corners[(i+1)%4+4])
		m.AddEdge(corners[i], corners[i+4])
	}
	return m
}

// NewGrid returns a square floor grid on the y = 0 plane.
func NewGrid(size float64, divisions int, clr color.RGBA) *Mesh {
	m := NewMesh(clr)
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		d := -half + float64(i)*step
		m.AddEdge(mgl64.Vec3{d, 0, -half}, mgl64.Vec3{d, 0, half})
		m.AddEdge(mgl64.Vec3{-half, 0, d}, mgl64.Vec3{half, 0, d})
	}
	return m
}

// NewUVSphere returns a latitude/longitude sphere centred on the origin.
func NewUVSphere(radius float64, slices, stacks int, clr color.RGBA) *Mesh {
	m := NewMesh(clr)
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	point := func(stack, slice int) mgl64.Vec3 {
		if stack == 0 {
			return mgl64.Vec3{0, radius, 0}
		}
		if stack == stacks {
			return mgl64.Vec3{0, -radius, 0}
		}
		theta := math.Pi * float64(stack) / float64(stacks)
		phi := 2 * math.Pi * float64(slice%slices) / float64(slices)
		return mgl64.Vec3{
			radius * math.Sin(theta) * math.Cos(phi),
			radius * math.Cos(theta),
			radius * math.Sin(theta) * math.Sin(phi),
		}
	}

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			m.AddEdge(point(stack, slice), point(stack+1, slice))
			if stack > 0 {
				m.AddEdge(point(stack, slice), point(stack, slice+1))
			}
		}
	}
	return m
}

// NewAxes returns three lines of the given length along +X, +Y and +Z.
func NewAxes(length float64, clr color.RGBA) *Mesh {
	m := NewMesh(clr)
	origin := mgl64.Vec3{}
	m.AddEdge(origin, mgl64.Vec3{length, 0, 0})
	m.AddEdge(origin, mgl64.Vec3{0, length, 0})
	m.AddEdge(origin, mgl64.Vec3{0, 0, length})
	return m
}
