package catmull

import (
	"github.com/npillmayer/starpath"
)

// Query returns the position on the curve at absolute time t, moving the
// cursor along as needed. t is measured in the same units as the arrival
// times of the knots and is expected to increase from call to call.
//
// The cursor leaves its current segment once the segment's duration has
// elapsed since the cursor entered it; the new segment is entered at t.
// At most one segment boundary is crossed per call. After the closing
// segment the cursor wraps around to segment 0.
//
// A cursor that sits on the closing segment while new knots are appended
// stays on the (new) closing segment.
//
// Query must not be called on a curve with fewer than two knots. If it is,
// the cursor is left untouched and its last known position is returned.
func (e *Engine) Query(t float64, c *Cursor) starpath.Pair {
	n := len(e.segments)
	if n < 2 {
		tracer().Debugf("query on curve with %d knots, returning %s", len(e.points), c.last)
		return c.last
	}
	if c.segment >= n || c.segment < 0 {
		c.segment, c.atFinal = 0, false
	}
	if c.atFinal && n > c.seen {
		c.segment = n - 1
	}
	c.seen = n
	if !c.started {
		c.start, c.started = t, true
	}
	elapsed := t - c.start
	if c.segment == n-1 {
		if elapsed >= e.segments[n-1].Duration {
			c.segment = 0
			c.start = t
			c.atFinal = false
		}
	} else if elapsed >= e.segments[c.segment].Duration {
		c.segment++
		c.start = t
		if c.segment == n-1 {
			c.atFinal = true
		}
	}
	c.last = e.segments[c.segment].At(t - c.start)
	return c.last
}

// Segment is the index of the segment the cursor is on.
func (c *Cursor) Segment() int {
	return c.segment
}

// SegmentStart is the time at which the cursor entered its current segment.
func (c *Cursor) SegmentStart() float64 {
	return c.start
}

// AtFinalSegment reports whether the cursor is on the closing segment.
func (c *Cursor) AtFinalSegment() bool {
	return c.atFinal
}

// Last returns the position computed by the most recent query.
func (c *Cursor) Last() starpath.Pair {
	return c.last
}

// Reset puts the cursor back on segment 0. The next query restarts the
// traversal at its time argument; p becomes the last known position.
func (c *Cursor) Reset(p starpath.Pair) {
	*c = Cursor{last: p}
}
