package curve

import (
	"errors"
	"fmt"

	"github.com/Faultbox/monorail/pkg/math"
)

// DefaultResolution is the number of sample intervals per segment.
const DefaultResolution = 100

// ErrInvalidResolution is returned for resolutions below 1.
var ErrInvalidResolution = errors.New("tessellation resolution must be at least 1")

// Tessellate samples every segment of cs at t = j/resolution for
// j = 0..resolution and appends the samples in segment order.
//
// The result has Segments()*(resolution+1) points. The end sample of segment i
// and the start sample of segment i+1 are both kept and coincide exactly.
func Tessellate(cs *CurveSet, resolution int) (*Polyline, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}

	k := cs.Segments()
	points := make([]math.Vec3, 0, k*(resolution+1))
	step := 1 / float32(resolution)

	for i := 0; i < k; i++ {
		seg := cs.segment(i)
		for j := 0; j < resolution; j++ {
			points = append(points, seg.Eval(float32(j)*step))
		}
		// Exact endpoint, free of accumulated rounding in j*step.
		points = append(points, seg.Eval(1))
	}

	return &Polyline{points: points, resolution: resolution}, nil
}
