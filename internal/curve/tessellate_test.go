package curve

import (
	"errors"
	"testing"

	"github.com/Faultbox/monorail/pkg/math"
)

func TestTessellateLength(t *testing.T) {
	cs, err := NewCurveSet(loopPoints())
	if err != nil {
		t.Fatalf("NewCurveSet failed: %v", err)
	}

	for _, r := range []int{1, 2, 4, 17, DefaultResolution} {
		line, err := Tessellate(cs, r)
		if err != nil {
			t.Fatalf("R=%d: Tessellate failed: %v", r, err)
		}
		if want := cs.Segments() * (r + 1); line.Len() != want {
			t.Errorf("R=%d: expected %d points, got %d", r, want, line.Len())
		}
		if line.Resolution() != r {
			t.Errorf("R=%d: Resolution() = %d", r, line.Resolution())
		}
	}
}

func TestTessellateSingleSegment(t *testing.T) {
	cs, err := ParseCurveSet([]byte("4\n0,0,0\n1,0,0\n2,1,0\n3,0,0\n"))
	if err != nil {
		t.Fatalf("ParseCurveSet failed: %v", err)
	}
	if cs.Segments() != 1 {
		t.Fatalf("expected 1 segment, got %d", cs.Segments())
	}

	line, err := Tessellate(cs, 4)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	if line.Len() != 5 {
		t.Fatalf("expected 5 points, got %d", line.Len())
	}
	if line.First() != (math.Vec3{}) {
		t.Errorf("first point = %v, want (0,0,0)", line.First())
	}
	if line.Last() != (math.Vec3{X: 3}) {
		t.Errorf("last point = %v, want (3,0,0)", line.Last())
	}

	seg, _ := cs.Segment(0)
	for j := 0; j <= 4; j++ {
		diff(t, seg.Eval(float32(j)/4), line.At(j), approx)
	}
}

func TestTessellateKeepsBoundaryDuplicates(t *testing.T) {
	cs, err := NewCurveSet(loopPoints())
	if err != nil {
		t.Fatalf("NewCurveSet failed: %v", err)
	}

	const r = 8
	line, err := Tessellate(cs, r)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	for i := 0; i+1 < cs.Segments(); i++ {
		end := line.At(i*(r+1) + r)
		start := line.At((i + 1) * (r + 1))
		if end != start {
			t.Errorf("segment %d: end %v and next start %v should coincide", i, end, start)
		}
		if end != cs.Point(3*(i+1)) {
			t.Errorf("segment %d: boundary %v should equal control point %v", i, end, cs.Point(3*(i+1)))
		}
	}
}

func TestTessellateInvalidResolution(t *testing.T) {
	cs, _ := NewCurveSet([]math.Vec3{{}, {X: 1}, {X: 2}, {X: 3}})
	for _, r := range []int{0, -1} {
		if _, err := Tessellate(cs, r); !errors.Is(err, ErrInvalidResolution) {
			t.Errorf("R=%d: expected ErrInvalidResolution, got %v", r, err)
		}
	}
}

func TestPolylineMeasures(t *testing.T) {
	line, err := NewPolyline([]math.Vec3{{}, {X: 3}, {X: 3, Y: 4}, {X: 3, Y: 4, Z: -2}})
	if err != nil {
		t.Fatalf("NewPolyline failed: %v", err)
	}

	if got := line.ArcLength(); got != 9 {
		t.Errorf("ArcLength() = %v, want 9", got)
	}
	diff(t, Bounds{Min: math.Vec3{Z: -2}, Max: math.Vec3{X: 3, Y: 4}}, line.Bounds())
	diff(t, math.Vec3{X: 3, Y: 4, Z: 2}, line.Bounds().Size())
	if line.Resolution() != 0 {
		t.Errorf("hand-built polyline should report resolution 0, got %d", line.Resolution())
	}
}

func TestNewPolylineDegenerate(t *testing.T) {
	for _, pts := range [][]math.Vec3{nil, {{X: 1}}} {
		if _, err := NewPolyline(pts); !errors.Is(err, ErrDegeneratePolyline) {
			t.Errorf("len=%d: expected ErrDegeneratePolyline, got %v", len(pts), err)
		}
	}
}
