// Package path places objects along a tessellated curve: a wrapping index
// cursor, a follower that turns an index into a position and heading, and a
// vehicle that drives both once per animation tick.
package path

import (
	"errors"
	"fmt"
)

// ErrDegenerateLength is returned when a cursor is created for fewer than two points.
var ErrDegenerateLength = errors.New("path needs at least 2 points")

// Cursor is an index into a polyline of fixed length that wraps in both
// directions. A Cursor has a single writer; share it only read-only.
type Cursor struct {
	index  int
	length int
}

// NewCursor returns a cursor at index 0 for a polyline of the given length.
func NewCursor(length int) (*Cursor, error) {
	if length < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateLength, length)
	}
	return &Cursor{length: length}, nil
}

// Index returns the current index.
func (c *Cursor) Index() int {
	return c.index
}

// Len returns the polyline length the cursor wraps at.
func (c *Cursor) Len() int {
	return c.length
}

// Advance moves one point forward, wrapping to 0 after the last point.
func (c *Cursor) Advance() int {
	c.index = (c.index + 1) % c.length
	return c.index
}

// Retreat moves one point backward, wrapping to the last point before 0.
func (c *Cursor) Retreat() int {
	c.index = (c.index - 1 + c.length) % c.length
	return c.index
}

// Step moves n points, forward for positive n and backward for negative n.
func (c *Cursor) Step(n int) int {
	c.index = wrap(c.index+n, c.length)
	return c.index
}

// Seek jumps to index i, wrapped into range.
func (c *Cursor) Seek(i int) int {
	c.index = wrap(i, c.length)
	return c.index
}

// Reset moves back to index 0.
func (c *Cursor) Reset() {
	c.index = 0
}

// wrap maps any integer into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
