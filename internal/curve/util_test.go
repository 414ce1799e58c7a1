package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/monorail/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// loopPoints is a closed four-segment loop approximating a circle of radius 10
// in the XZ plane, lifted into a hill on one side.
func loopPoints() []math.Vec3 {
	const k = 5.5228475 // 10 * 0.5522847
	return []math.Vec3{
		{X: 10, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: k},
		{X: k, Y: 2, Z: 10},
		{X: 0, Y: 3, Z: 10},
		{X: -k, Y: 4, Z: 10},
		{X: -10, Y: 2, Z: k},
		{X: -10, Y: 0, Z: 0},
		{X: -10, Y: 0, Z: -k},
		{X: -k, Y: 0, Z: -10},
		{X: 0, Y: 0, Z: -10},
		{X: k, Y: 0, Z: -10},
		{X: 10, Y: 0, Z: -k},
		{X: 10, Y: 0, Z: 0},
	}
}
