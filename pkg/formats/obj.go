package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/Faultbox/monorail/pkg/math"
)

// ErrInvalidOBJIndex is returned when a triangle references a missing vertex.
var ErrInvalidOBJIndex = errors.New("OBJ triangle index out of range")

// OBJMesh is a triangle mesh to be written as a Wavefront OBJ object.
// Normals and TexCoords are optional; when present they must have one entry
// per position.
type OBJMesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords [][2]float32
	Triangles []uint32
}

// OBJLine is a polyline written as a single OBJ line element.
type OBJLine struct {
	Name   string
	Points []math.Vec3
}

// WriteOBJ writes meshes and lines to w in Wavefront OBJ text format.
// Indices are rebased so that every object shares one global vertex list.
func WriteOBJ(w io.Writer, meshes []OBJMesh, lines []OBJLine) error {
	bw := bufio.NewWriter(w)
	var vBase, vtBase, vnBase int

	for _, m := range meshes {
		if len(m.Triangles)%3 != 0 {
			return fmt.Errorf("%w: %s: index count %d is not a multiple of 3", ErrInvalidOBJIndex, m.Name, len(m.Triangles))
		}
		hasN := len(m.Normals) == len(m.Positions) && len(m.Normals) > 0
		hasT := len(m.TexCoords) == len(m.Positions) && len(m.TexCoords) > 0

		fmt.Fprintf(bw, "o %s\n", m.Name)
		for _, p := range m.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		if hasT {
			for _, uv := range m.TexCoords {
				fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
			}
		}
		if hasN {
			for _, n := range m.Normals {
				fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
			}
		}

		for i := 0; i < len(m.Triangles); i += 3 {
			bw.WriteString("f")
			for _, idx := range m.Triangles[i : i+3] {
				if int(idx) >= len(m.Positions) {
					return fmt.Errorf("%w: %s: %d >= %d", ErrInvalidOBJIndex, m.Name, idx, len(m.Positions))
				}
				writeFaceVertex(bw, int(idx), vBase, vtBase, vnBase, hasT, hasN)
			}
			bw.WriteString("\n")
		}

		vBase += len(m.Positions)
		if hasT {
			vtBase += len(m.TexCoords)
		}
		if hasN {
			vnBase += len(m.Normals)
		}
	}

	for _, l := range lines {
		if len(l.Points) < 2 {
			continue
		}
		fmt.Fprintf(bw, "o %s\n", l.Name)
		for _, p := range l.Points {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		bw.WriteString("l")
		for i := range l.Points {
			fmt.Fprintf(bw, " %d", vBase+i+1)
		}
		bw.WriteString("\n")
		vBase += len(l.Points)
	}

	return bw.Flush()
}

// writeFaceVertex writes one 1-based "v/vt/vn" face reference.
func writeFaceVertex(w *bufio.Writer, idx, vBase, vtBase, vnBase int, hasT, hasN bool) {
	switch {
	case hasT && hasN:
		fmt.Fprintf(w, " %d/%d/%d", vBase+idx+1, vtBase+idx+1, vnBase+idx+1)
	case hasN:
		fmt.Fprintf(w, " %d//%d", vBase+idx+1, vnBase+idx+1)
	case hasT:
		fmt.Fprintf(w, " %d/%d", vBase+idx+1, vtBase+idx+1)
	default:
		fmt.Fprintf(w, " %d", vBase+idx+1)
	}
}
