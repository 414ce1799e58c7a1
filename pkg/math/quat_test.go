package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatMatchesRotateY(t *testing.T) {
	for _, angle := range []float32{0, 0.3, float32(math.Pi / 2), 2.5, -1.2} {
		q := QuatFromAxisAngle(AxisY, angle)
		m := RotateY(angle)
		qm := q.ToMat4()

		for i := range m {
			if abs(m[i]-qm[i]) > 1e-5 {
				t.Fatalf("angle %v: ToMat4()[%d] = %v, RotateY = %v", angle, i, qm[i], m[i])
			}
		}

		v := Vec3{1, 2, 3}
		a := q.Rotate(v)
		b := m.TransformVec3(v)
		if a.Distance(b) > 1e-4 {
			t.Errorf("angle %v: Rotate = %v, matrix = %v", angle, a, b)
		}
	}
}
