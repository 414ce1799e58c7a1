package curve

import (
	"errors"
	"fmt"

	"github.com/Faultbox/monorail/pkg/math"
)

// ErrDegeneratePolyline is returned for polylines with fewer than two points.
var ErrDegeneratePolyline = errors.New("polyline needs at least 2 points")

// Polyline is an immutable, ordered sequence of sampled curve points.
// Index order is the traversal direction.
type Polyline struct {
	points     []math.Vec3
	resolution int
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the box extent.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// NewPolyline returns a polyline owning a copy of points.
func NewPolyline(points []math.Vec3) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDegeneratePolyline, len(points))
	}
	owned := make([]math.Vec3, len(points))
	copy(owned, points)
	return &Polyline{points: owned}, nil
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.points)
}

// At returns point i.
func (p *Polyline) At(i int) math.Vec3 {
	return p.points[i]
}

// Points returns a copy of the points.
func (p *Polyline) Points() []math.Vec3 {
	out := make([]math.Vec3, len(p.points))
	copy(out, p.points)
	return out
}

// Resolution returns the per-segment sample resolution, or 0 when the polyline
// was not produced by Tessellate.
func (p *Polyline) Resolution() int {
	return p.resolution
}

// First returns the first point.
func (p *Polyline) First() math.Vec3 {
	return p.points[0]
}

// Last returns the last point.
func (p *Polyline) Last() math.Vec3 {
	return p.points[len(p.points)-1]
}

// ArcLength returns the summed length of all polyline edges.
func (p *Polyline) ArcLength() float32 {
	var total float32
	for i := 1; i < len(p.points); i++ {
		total += p.points[i].Distance(p.points[i-1])
	}
	return total
}

// Bounds returns the axis-aligned bounding box of all points.
func (p *Polyline) Bounds() Bounds {
	b := Bounds{Min: p.points[0], Max: p.points[0]}
	for _, pt := range p.points[1:] {
		b.Min = b.Min.Min(pt)
		b.Max = b.Max.Max(pt)
	}
	return b
}
