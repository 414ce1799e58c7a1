package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/monorail/pkg/math"
)

func TestWriteOBJ_MeshAndLine(t *testing.T) {
	mesh := OBJMesh{
		Name:      "quad",
		Positions: []math.Vec3{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}},
		Normals:   []math.Vec3{{Z: 1}, {Z: 1}, {Z: 1}, {Z: 1}},
		TexCoords: [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Triangles: []uint32{0, 1, 2, 2, 1, 3},
	}
	line := OBJLine{
		Name:   "path",
		Points: []math.Vec3{{X: 0}, {X: 1}, {X: 2}},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, []OBJMesh{mesh}, []OBJLine{line}); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"o quad\n",
		"v 1 1 0\n",
		"vt 1 1\n",
		"vn 0 0 1\n",
		"f 1/1/1 2/2/2 3/3/3\n",
		"f 3/3/3 2/2/2 4/4/4\n",
		"o path\n",
		"l 5 6 7\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "\nv "); got != 7 {
		t.Errorf("expected 7 vertices, got %d", got)
	}
}

func TestWriteOBJ_PositionsOnly(t *testing.T) {
	mesh := OBJMesh{
		Name:      "tri",
		Positions: []math.Vec3{{X: 0}, {X: 1}, {Y: 1}},
		Triangles: []uint32{0, 1, 2},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, []OBJMesh{mesh}, nil); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	if !strings.Contains(buf.String(), "f 1 2 3\n") {
		t.Errorf("expected plain face indices:\n%s", buf.String())
	}
}

func TestWriteOBJ_InvalidIndex(t *testing.T) {
	tests := []struct {
		name string
		tris []uint32
	}{
		{"out of range", []uint32{0, 1, 5}},
		{"partial triangle", []uint32{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := OBJMesh{
				Name:      "bad",
				Positions: []math.Vec3{{X: 0}, {X: 1}, {Y: 1}},
				Triangles: tt.tris,
			}
			err := WriteOBJ(&bytes.Buffer{}, []OBJMesh{mesh}, nil)
			if !errors.Is(err, ErrInvalidOBJIndex) {
				t.Errorf("expected ErrInvalidOBJIndex, got %v", err)
			}
		})
	}
}
