package wire

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestMeshDeduplicates(t *testing.T) {
	m := NewMesh(white)
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{1, 0, 0}

	m.AddEdge(a, b)
	m.AddEdge(b, a)
	m.AddEdge(a, a)

	if len(m.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(m.Points))
	}
	if len(m.Edges) != 1 {
		t.Errorf("len(Edges) = %d, want 1", len(m.Edges))
	}
	if i := m.AddPoint(b); i != 1 {
		t.Errorf("AddPoint(existing) = %d, want 1", i)
	}
}

func TestZeroMesh(t *testing.T) {
	var m Mesh
	m.AddEdge(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	m.AddEdge(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 0})

	if len(m.Points) != 2 || len(m.Edges) != 1 {
		t.Errorf("Points, Edges = %d, %d, want 2, 1", len(m.Points), len(m.Edges))
	}

	prefilled := Mesh{Points: []mgl64.Vec3{{1, 1, 1}}}
	if i := prefilled.AddPoint(mgl64.Vec3{1, 1, 1}); i != 0 {
		t.Errorf("AddPoint(existing) = %d, want 0", i)
	}
}

func TestGenerators(t *testing.T) {
	testCases := []struct {
		name        string
		mesh        *Mesh
		wantPoints  int
		wantEdges   int
		wantExtents mgl64.Vec3
	}{
		{"Cube", NewCube(2, white), 8, 12, mgl64.Vec3{2, 2, 2}},
		{"Grid", NewGrid(10, 4, white), 16, 10, mgl64.Vec3{10, 0, 10}},
		{"UV sphere", NewUVSphere(1, 8, 4, white), 26, 56, mgl64.Vec3{2, 2, 2}},
		{"Axes", NewAxes(3, white), 4, 3, mgl64.Vec3{3, 3, 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.mesh.Points) != tc.wantPoints {
				t.Errorf("len(Points) = %d, want %d", len(tc.mesh.Points), tc.wantPoints)
			}
			if len(tc.mesh.Edges) != tc.wantEdges {
				t.Errorf("len(Edges) = %d, want %d", len(tc.mesh.Edges), tc.wantEdges)
			}
			if got := tc.mesh.Extents(); !vec3AlmostEqual(got, tc.wantExtents) {
				t.Errorf("Extents() = %v, want %v", got, tc.wantExtents)
			}
			for _, e := range tc.mesh.Edges {
				if e[0] >= e[1] || e[1] >= len(tc.mesh.Points) {
					t.Fatalf("bad edge %v", e)
				}
			}
		})
	}
}

func TestEmptyMeshExtents(t *testing.T) {
	if got := NewMesh(white).Extents(); got != (mgl64.Vec3{}) {
		t.Errorf("Extents() = %v, want zero", got)
	}
}
