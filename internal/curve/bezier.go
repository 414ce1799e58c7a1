// Package curve builds piecewise cubic Bezier curves from control points and
// tessellates them into polylines.
package curve

import "github.com/Faultbox/monorail/pkg/math"

// Evaluate returns the point at parameter t on the cubic Bezier curve defined
// by p0..p3:
//
//	(1-t)^3 p0 + 3(1-t)^2 t p1 + 3(1-t) t^2 p2 + t^3 p3
//
// t outside [0, 1] extrapolates along the same polynomial.
func Evaluate(p0, p1, p2, p3 math.Vec3, t float32) math.Vec3 {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t

	return math.Vec3{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
		Z: b0*p0.Z + b1*p1.Z + b2*p2.Z + b3*p3.Z,
	}
}

// Segment is one cubic Bezier piece of a curve set.
type Segment struct {
	P0, P1, P2, P3 math.Vec3
}

// Eval returns the point at parameter t.
func (s Segment) Eval(t float32) math.Vec3 {
	return Evaluate(s.P0, s.P1, s.P2, s.P3, t)
}

// Derivative returns the first derivative with respect to t.
func (s Segment) Derivative(t float32) math.Vec3 {
	mt := 1 - t
	d0 := s.P1.Sub(s.P0).Scale(3 * mt * mt)
	d1 := s.P2.Sub(s.P1).Scale(6 * mt * t)
	d2 := s.P3.Sub(s.P2).Scale(3 * t * t)
	return d0.Add(d1).Add(d2)
}
