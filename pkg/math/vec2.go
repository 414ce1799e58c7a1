package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Angle returns atan2(Y, X) in radians.
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}
