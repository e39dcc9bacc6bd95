package motion

import (
	"github.com/npillmayer/starpath"
	"github.com/npillmayer/starpath/catmull"
)

// Follower travels along a curve. It owns its traversal cursor, so several
// followers may share one curve.
type Follower struct {
	body
	curve     *catmull.Engine
	cursor    catmull.Cursor
	timeScale float64
}

// NewFollower creates a follower bound to curve. It panics if curve is nil.
func NewFollower(curve *catmull.Engine, prm Params) *Follower {
	if curve == nil {
		panic("follower needs a curve")
	}
	prm = prm.normalized()
	f := &Follower{
		body:      body{pos: prm.Home},
		curve:     curve,
		timeScale: prm.TimeScale,
	}
	f.cursor.Reset(prm.Home)
	return f
}

// Place puts the follower on screen at p. The follower jumps onto the
// curve as soon as the curve is closed.
func (f *Follower) Place(p starpath.Pair) bool {
	if f.placed {
		return false
	}
	f.pos, f.placed = p, true
	return true
}

// Advance moves the follower to its position on the curve at time t and
// publishes that position as the new target. While the curve has fewer than
// two knots the follower does not move and passes target on unchanged.
func (f *Follower) Advance(t float64, target starpath.Pair) starpath.Pair {
	f.spin = SpinAt(t)
	if f.curve.VertexCount() < 2 {
		return target
	}
	f.pos = f.curve.Query(t*f.timeScale, &f.cursor)
	return f.pos
}

// Curve returns the curve the follower is bound to.
func (f *Follower) Curve() *catmull.Engine {
	return f.curve
}

// TimeScale is the factor converting the follower's time (s) to curve time.
func (f *Follower) TimeScale() float64 {
	return f.timeScale
}

// Cursor returns the follower's traversal state.
func (f *Follower) Cursor() *catmull.Cursor {
	return &f.cursor
}
