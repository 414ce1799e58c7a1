package curve

import (
	"testing"

	"github.com/Faultbox/monorail/pkg/math"
)

func TestEvaluateEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 math.Vec3
	}{
		{"line", math.Vec3{}, math.Vec3{X: 1}, math.Vec3{X: 2}, math.Vec3{X: 3}},
		{"arch", math.Vec3{}, math.Vec3{X: 1, Y: 2}, math.Vec3{X: 2, Y: 2}, math.Vec3{X: 3}},
		{"3d", math.Vec3{X: -1.5, Y: 2, Z: 7}, math.Vec3{X: 4, Y: -3, Z: 0.1}, math.Vec3{X: 9, Y: 9, Z: 9}, math.Vec3{X: 0.3, Y: -8, Z: 2.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.p0, tt.p1, tt.p2, tt.p3, 0); got != tt.p0 {
				t.Errorf("Evaluate(t=0) = %v, want %v", got, tt.p0)
			}
			if got := Evaluate(tt.p0, tt.p1, tt.p2, tt.p3, 1); got != tt.p3 {
				t.Errorf("Evaluate(t=1) = %v, want %v", got, tt.p3)
			}
		})
	}
}

func TestEvaluateMidpoint(t *testing.T) {
	// B(0.5) = (p0 + 3p1 + 3p2 + p3) / 8
	p0 := math.Vec3{}
	p1 := math.Vec3{X: 1, Y: 2}
	p2 := math.Vec3{X: 2, Y: 2}
	p3 := math.Vec3{X: 3}

	diff(t, math.Vec3{X: 1.5, Y: 1.5}, Evaluate(p0, p1, p2, p3, 0.5), approx)
}

func TestEvaluateExtrapolates(t *testing.T) {
	// Collinear, evenly spaced control points give B(t) = 3t along X.
	p0, p1, p2, p3 := math.Vec3{}, math.Vec3{X: 1}, math.Vec3{X: 2}, math.Vec3{X: 3}

	diff(t, math.Vec3{X: -3}, Evaluate(p0, p1, p2, p3, -1), approx)
	diff(t, math.Vec3{X: 6}, Evaluate(p0, p1, p2, p3, 2), approx)
}

func TestSegmentDerivative(t *testing.T) {
	s := Segment{
		P0: math.Vec3{},
		P1: math.Vec3{X: 1, Y: 2},
		P2: math.Vec3{X: 2, Y: 2},
		P3: math.Vec3{X: 3},
	}

	// B'(0) = 3(p1-p0), B'(1) = 3(p3-p2)
	diff(t, math.Vec3{X: 3, Y: 6}, s.Derivative(0), approx)
	diff(t, math.Vec3{X: 3, Y: -6}, s.Derivative(1), approx)

	// Central difference agrees with the analytic derivative.
	const h = 1e-3
	for _, u := range []float32{0.2, 0.5, 0.8} {
		numeric := s.Eval(u + h).Sub(s.Eval(u - h)).Scale(1 / (2 * h))
		if numeric.Distance(s.Derivative(u)) > 1e-2 {
			t.Errorf("t=%v: numeric %v, analytic %v", u, numeric, s.Derivative(u))
		}
	}
}
