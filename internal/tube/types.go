// Package tube sweeps a circular cross-section along a polyline to build the
// monorail surface mesh.
package tube

import (
	"github.com/Faultbox/monorail/internal/curve"
	"github.com/Faultbox/monorail/pkg/math"
)

// Vertex is a tube mesh vertex.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3  // outward, unit length
	TexCoord [2]float32 // u around the ring, v along the path
}

// Mesh holds tube geometry ready for upload as a triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   curve.Bounds

	// Rings is the number of cross-sections (one per polyline point).
	Rings int
	// Segments is the number of vertices per ring.
	Segments int
}

// Positions returns vertex positions as a flat x,y,z slice.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.Position.X, v.Position.Y, v.Position.Z)
	}
	return out
}

// Triangles returns the number of triangles.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}
