package tube

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/monorail/internal/curve"
	"github.com/Faultbox/monorail/pkg/math"
)

// Generator errors.
var (
	ErrInvalidRadius     = errors.New("tube radius must be positive")
	ErrInvalidSegments   = errors.New("tube needs at least 3 segments per ring")
	ErrInvalidUp         = errors.New("tube up vector must be non-zero")
	ErrDegenerateTangent = errors.New("polyline points all coincide")
)

// Options controls tube generation.
type Options struct {
	Radius   float32
	Segments int
	// Up is the world up used to orient each ring. Zero value means +Y.
	Up math.Vec3
}

// DefaultOptions returns the monorail tube settings.
func DefaultOptions() Options {
	return Options{
		Radius:   0.25,
		Segments: 12,
		Up:       math.AxisY,
	}
}

func (o Options) validate() error {
	if !(o.Radius > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, o.Radius)
	}
	if o.Segments < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidSegments, o.Segments)
	}
	if o.Up.IsZero() || o.Up.IsNaN() {
		return ErrInvalidUp
	}
	return nil
}

// Generate builds a ring of opts.Segments vertices around every point of
// line and connects consecutive rings with two triangles per quad.
//
// The mesh has Len()*Segments vertices and (Len()-1)*Segments*6 indices.
func Generate(line *curve.Polyline, opts Options) (*Mesh, error) {
	if opts.Up.IsZero() {
		opts.Up = math.AxisY
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if line == nil || line.Len() < 2 {
		return nil, curve.ErrDegeneratePolyline
	}

	rings := line.Len()
	s := opts.Segments
	up := opts.Up.Normalize()

	// Ring angles are shared by every cross-section.
	sin := make([]float32, s)
	cos := make([]float32, s)
	for j := 0; j < s; j++ {
		sin[j], cos[j] = math32.Sincos(2 * math32.Pi * float32(j) / float32(s))
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, rings*s),
		Indices:  make([]uint32, 0, (rings-1)*s*6),
		Rings:    rings,
		Segments: s,
	}

	for i := 0; i < rings; i++ {
		tangent, ok := tangentAt(line, i)
		if !ok {
			return nil, ErrDegenerateTangent
		}
		f := newFrame(tangent, up)
		center := line.At(i)
		v := float32(i) / float32(rings-1)

		for j := 0; j < s; j++ {
			dir := f.normal.Scale(cos[j]).Add(f.binormal.Scale(sin[j]))
			pos := center.Add(dir.Scale(opts.Radius))
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos,
				Normal:   dir,
				TexCoord: [2]float32{float32(j) / float32(s), v},
			})

			if i == 0 && j == 0 {
				mesh.Bounds = curve.Bounds{Min: pos, Max: pos}
			} else {
				mesh.Bounds.Min = mesh.Bounds.Min.Min(pos)
				mesh.Bounds.Max = mesh.Bounds.Max.Max(pos)
			}
		}
	}

	for i := 0; i < rings-1; i++ {
		prev := uint32(i * s)
		curr := uint32((i + 1) * s)
		for j := 0; j < s; j++ {
			j0 := uint32(j)
			j1 := uint32((j + 1) % s)
			mesh.Indices = append(mesh.Indices,
				prev+j0, prev+j1, curr+j0,
				curr+j0, prev+j1, curr+j1,
			)
		}
	}

	return mesh, nil
}
