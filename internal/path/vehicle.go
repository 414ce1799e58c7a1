package path

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/monorail/internal/curve"
)

const twoPi = 2 * math32.Pi

// Vehicle drives a cursor along a follower, Speed points per tick, and
// tracks a wheel spin angle kept in [0, 2π).
type Vehicle struct {
	follower *Follower
	cursor   *Cursor

	// Speed is the number of polyline points moved per tick.
	Speed int
	// SpinRate is the wheel spin change per tick, in radians.
	SpinRate float32

	spin float32
}

// NewVehicle creates a vehicle at the start of line.
func NewVehicle(line *curve.Polyline, yawOffset float32, speed int) (*Vehicle, error) {
	f, err := NewFollower(line, yawOffset)
	if err != nil {
		return nil, err
	}
	c, err := NewCursor(line.Len())
	if err != nil {
		return nil, err
	}
	if speed < 1 {
		speed = 1
	}
	return &Vehicle{
		follower: f,
		cursor:   c,
		Speed:    speed,
		SpinRate: 0.1,
	}, nil
}

// Forward advances one tick. The wheels spin backwards relative to travel.
func (v *Vehicle) Forward() Pose {
	v.cursor.Step(v.Speed)
	v.spin = wrapAngle(v.spin - v.SpinRate)
	return v.Pose()
}

// Backward retreats one tick.
func (v *Vehicle) Backward() Pose {
	v.cursor.Step(-v.Speed)
	v.spin = wrapAngle(v.spin + v.SpinRate)
	return v.Pose()
}

// Pose returns the current placement.
func (v *Vehicle) Pose() Pose {
	return v.follower.PoseAt(v.cursor)
}

// Index returns the current polyline index.
func (v *Vehicle) Index() int {
	return v.cursor.Index()
}

// Spin returns the wheel spin angle in [0, 2π).
func (v *Vehicle) Spin() float32 {
	return v.spin
}

// wrapAngle maps a into [0, 2π).
func wrapAngle(a float32) float32 {
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
