package path

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/monorail/internal/curve"
	"github.com/Faultbox/monorail/pkg/math"
)

// DefaultYawOffset turns a model whose forward axis is a quarter turn away
// from the path tangent. It depends on the model's local frame.
const DefaultYawOffset = math32.Pi / 2

// Pose is the placement of an object at one polyline index.
type Pose struct {
	Index    int
	Position math.Vec3
	// Heading is the yaw around world up, in radians.
	Heading float32
}

// Matrix returns the model matrix translate(Position) * rotateY(Heading).
func (p Pose) Matrix() math.Mat4 {
	return math.TranslateVec3(p.Position).Mul(math.RotateY(p.Heading))
}

// Orientation returns the heading as a rotation about world up.
func (p Pose) Orientation() math.Quat {
	return math.QuatFromAxisAngle(math.AxisY, p.Heading)
}

// Follower maps polyline indices to positions and headings.
// It only reads the polyline and is safe for concurrent use.
type Follower struct {
	line      *curve.Polyline
	yawOffset float32
}

// NewFollower returns a follower over line. yawOffset is added to every
// heading; pass DefaultYawOffset for models facing the path sideways.
func NewFollower(line *curve.Polyline, yawOffset float32) (*Follower, error) {
	if line == nil || line.Len() < 2 {
		n := 0
		if line != nil {
			n = line.Len()
		}
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateLength, n)
	}
	return &Follower{line: line, yawOffset: yawOffset}, nil
}

// Len returns the length of the followed polyline.
func (f *Follower) Len() int {
	return f.line.Len()
}

// YawOffset returns the constant added to every heading.
func (f *Follower) YawOffset() float32 {
	return f.yawOffset
}

// Position returns the polyline point at index i (wrapped into range).
func (f *Follower) Position(i int) math.Vec3 {
	return f.line.At(wrap(i, f.line.Len()))
}

// Tangent returns the unit central-difference direction at index i, using the
// neighbours on either side with wrap-around. It is zero when they coincide.
func (f *Follower) Tangent(i int) math.Vec3 {
	n := f.line.Len()
	i = wrap(i, n)
	prev := f.line.At((i - 1 + n) % n)
	next := f.line.At((i + 1) % n)
	return next.Sub(prev).Normalize()
}

// Heading returns atan2(tangent.Z, tangent.X) + yaw offset at index i.
// A zero tangent yields just the yaw offset.
func (f *Follower) Heading(i int) float32 {
	return f.Tangent(i).XZ().Angle() + f.yawOffset
}

// Pose returns the position and heading at index i.
func (f *Follower) Pose(i int) Pose {
	i = wrap(i, f.line.Len())
	return Pose{
		Index:    i,
		Position: f.line.At(i),
		Heading:  f.Heading(i),
	}
}

// PoseAt returns the pose at the cursor's current index.
func (f *Follower) PoseAt(c *Cursor) Pose {
	return f.Pose(c.Index())
}
