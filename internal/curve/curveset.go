package curve

import (
	"errors"
	"fmt"

	"github.com/Faultbox/monorail/pkg/formats"
	"github.com/Faultbox/monorail/pkg/math"
)

// Curve set errors.
var (
	ErrTooFewPoints    = errors.New("curve set needs at least 4 control points")
	ErrPointCount      = errors.New("control point count must be 3k+1")
	ErrSegmentOutRange = errors.New("segment index out of range")
)

// CurveSet is an ordered list of control points describing k cubic Bezier
// segments. Point 3i is shared as the end of segment i-1 and the start of
// segment i.
type CurveSet struct {
	points []math.Vec3
}

// NewCurveSet validates points and returns a curve set owning a copy of them.
func NewCurveSet(points []math.Vec3) (*CurveSet, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if !formats.ValidPointCount(len(points)) {
		return nil, fmt.Errorf("%w: got %d", ErrPointCount, len(points))
	}

	owned := make([]math.Vec3, len(points))
	copy(owned, points)
	return &CurveSet{points: owned}, nil
}

// Len returns the number of control points.
func (c *CurveSet) Len() int {
	return len(c.points)
}

// Point returns control point i.
func (c *CurveSet) Point(i int) math.Vec3 {
	return c.points[i]
}

// Points returns a copy of the control points.
func (c *CurveSet) Points() []math.Vec3 {
	out := make([]math.Vec3, len(c.points))
	copy(out, c.points)
	return out
}

// Segments returns the number of cubic segments.
func (c *CurveSet) Segments() int {
	return (len(c.points) - 1) / 3
}

// Segment returns segment i.
func (c *CurveSet) Segment(i int) (Segment, error) {
	if i < 0 || i >= c.Segments() {
		return Segment{}, fmt.Errorf("%w: %d of %d", ErrSegmentOutRange, i, c.Segments())
	}
	return c.segment(i), nil
}

func (c *CurveSet) segment(i int) Segment {
	p := c.points[3*i : 3*i+4]
	return Segment{P0: p[0], P1: p[1], P2: p[2], P3: p[3]}
}

// Closed reports whether the last control point coincides with the first.
func (c *CurveSet) Closed() bool {
	return c.points[0] == c.points[len(c.points)-1]
}
