package tube

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/monorail/internal/curve"
	"github.com/Faultbox/monorail/pkg/math"
)

// parallelEpsilon is the |tangent x up| below which up is treated as parallel.
const parallelEpsilon = 1e-6

// frame is the orthonormal basis of one ring.
type frame struct {
	tangent  math.Vec3
	normal   math.Vec3
	binormal math.Vec3
}

// tangentAt returns the unit forward difference at i, or the backward
// difference at the last point. Coincident neighbours (segment boundary
// duplicates) are skipped by searching ahead, then behind, for a distinct
// point. ok is false when every point coincides with line[i].
func tangentAt(line *curve.Polyline, i int) (t math.Vec3, ok bool) {
	n := line.Len()
	p := line.At(i)

	if i < n-1 {
		for j := i + 1; j < n; j++ {
			if d := line.At(j).Sub(p); !d.IsZero() {
				return d.Normalize(), true
			}
		}
	}
	for j := i - 1; j >= 0; j-- {
		if d := p.Sub(line.At(j)); !d.IsZero() {
			return d.Normalize(), true
		}
	}
	return math.Vec3{}, false
}

// fallbackUp returns a secondary up vector that is not parallel to up.
func fallbackUp(up math.Vec3) math.Vec3 {
	if math32.Abs(up.Normalize().X) > 0.9 {
		return math.AxisZ
	}
	return math.AxisX
}

// newFrame builds normal = normalize(tangent x up) and binormal =
// tangent x normal. A tangent parallel to up switches to fallbackUp.
func newFrame(tangent, up math.Vec3) frame {
	n := tangent.Cross(up)
	if n.Length() < parallelEpsilon {
		n = tangent.Cross(fallbackUp(up))
	}
	n = n.Normalize()
	return frame{
		tangent:  tangent,
		normal:   n,
		binormal: tangent.Cross(n),
	}
}
