// Package formats provides readers and writers for track file formats.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/monorail/pkg/math"
)

// Control point file errors.
var (
	ErrMissingPointCount  = errors.New("missing control point count")
	ErrInvalidPointCount  = errors.New("invalid control point count: expected 3k+1 with k >= 1")
	ErrTruncatedPointList = errors.New("fewer control points than declared")
	ErrMalformedPoint     = errors.New("malformed control point: expected x,y,z")
)

// maxPreallocPoints bounds the up-front allocation driven by the declared count.
const maxPreallocPoints = 4096

// ControlPoints is a parsed control point file.
//
// The file is line oriented: the first line holds the point count N, followed
// by N lines of comma separated "x,y,z" coordinates. N must equal 3k+1 so the
// points describe k cubic Bezier segments sharing their end points.
type ControlPoints struct {
	Points []math.Vec3
}

// Segments returns the number of cubic segments described by the points.
func (c *ControlPoints) Segments() int {
	if len(c.Points) < 4 {
		return 0
	}
	return (len(c.Points) - 1) / 3
}

// ValidPointCount reports whether n control points form whole cubic segments.
func ValidPointCount(n int) bool {
	return n >= 4 && n%3 == 1
}

// ParseControlPoints parses a control point file from raw bytes.
func ParseControlPoints(data []byte) (*ControlPoints, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0

	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if text := strings.TrimSpace(sc.Text()); text != "" {
				return text, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return nil, ErrMissingPointCount
	}

	count, err := strconv.ParseUint(header, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %q", ErrInvalidPointCount, line, header)
	}
	if !ValidPointCount(int(count)) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPointCount, count)
	}

	cp := &ControlPoints{
		Points: make([]math.Vec3, 0, min(int(count), maxPreallocPoints)),
	}

	for i := 0; i < int(count); i++ {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading control points: %w", err)
			}
			return nil, fmt.Errorf("%w: declared %d, found %d", ErrTruncatedPointList, count, i)
		}

		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cp.Points = append(cp.Points, p)
	}

	return cp, nil
}

// parsePoint parses a single "x,y,z" line.
func parsePoint(text string) (math.Vec3, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: %q", ErrMalformedPoint, text)
	}

	var v [3]float32
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %q", ErrMalformedPoint, text)
		}
		v[i] = float32(n)
		if math32.IsNaN(v[i]) || math32.IsInf(v[i], 0) {
			return math.Vec3{}, fmt.Errorf("%w: non-finite coordinate in %q", ErrMalformedPoint, text)
		}
	}

	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
