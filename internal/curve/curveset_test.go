package curve

import (
	"errors"
	"testing"

	"github.com/Faultbox/monorail/pkg/math"
)

func TestNewCurveSet(t *testing.T) {
	tests := []struct {
		n        int
		segments int
		err      error
	}{
		{0, 0, ErrTooFewPoints},
		{3, 0, ErrTooFewPoints},
		{4, 1, nil},
		{5, 0, ErrPointCount},
		{6, 0, ErrPointCount},
		{7, 2, nil},
		{13, 4, nil},
	}

	for _, tt := range tests {
		points := make([]math.Vec3, tt.n)
		for i := range points {
			points[i] = math.Vec3{X: float32(i)}
		}

		cs, err := NewCurveSet(points)
		if !errors.Is(err, tt.err) {
			t.Errorf("n=%d: expected error %v, got %v", tt.n, tt.err, err)
			continue
		}
		if err != nil {
			if cs != nil {
				t.Errorf("n=%d: expected nil curve set on error", tt.n)
			}
			continue
		}
		if cs.Segments() != tt.segments {
			t.Errorf("n=%d: expected %d segments, got %d", tt.n, tt.segments, cs.Segments())
		}
		if cs.Len() != tt.n {
			t.Errorf("n=%d: expected %d points, got %d", tt.n, tt.n, cs.Len())
		}
	}
}

func TestCurveSetOwnsPoints(t *testing.T) {
	points := []math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	cs, err := NewCurveSet(points)
	if err != nil {
		t.Fatalf("NewCurveSet failed: %v", err)
	}

	points[0] = math.Vec3{X: 99}
	if cs.Point(0) != (math.Vec3{}) {
		t.Error("curve set should not alias the caller's slice")
	}

	out := cs.Points()
	out[1] = math.Vec3{X: 99}
	if cs.Point(1) != (math.Vec3{X: 1}) {
		t.Error("Points() should return a copy")
	}
}

func TestCurveSetSegments(t *testing.T) {
	cs, err := NewCurveSet(loopPoints())
	if err != nil {
		t.Fatalf("NewCurveSet failed: %v", err)
	}
	if !cs.Closed() {
		t.Error("loop should be closed")
	}

	for i := 0; i < cs.Segments(); i++ {
		seg, err := cs.Segment(i)
		if err != nil {
			t.Fatalf("Segment(%d) failed: %v", i, err)
		}
		if seg.P0 != cs.Point(3*i) || seg.P3 != cs.Point(3*i+3) {
			t.Errorf("segment %d endpoints do not match control points", i)
		}

		if i+1 < cs.Segments() {
			next, _ := cs.Segment(i + 1)
			if seg.Eval(1) != next.Eval(0) {
				t.Errorf("segment %d end %v != segment %d start %v", i, seg.Eval(1), i+1, next.Eval(0))
			}
		}
	}

	for _, i := range []int{-1, cs.Segments()} {
		if _, err := cs.Segment(i); !errors.Is(err, ErrSegmentOutRange) {
			t.Errorf("Segment(%d): expected ErrSegmentOutRange, got %v", i, err)
		}
	}
}
