package catmull

import (
	"github.com/npillmayer/starpath"
)

// recompute rebuilds velocities, segments and the tessellation from scratch.
// With fewer than two knots there is no segment; a single knot is
// tessellated as one vertex.
func (e *Engine) recompute() {
	n := len(e.points)
	e.vels = e.vels[:n]
	e.segments = e.segments[:0]
	e.vertices = e.vertices[:0]
	e.recomputes++
	if n < 2 {
		if n == 1 {
			e.vels[0] = starpath.Origin
			e.vertices = append(e.vertices, vertex(e.points[0].Position, e.cfg.KnotColor))
		}
		return
	}
	for i := 0; i < n; i++ {
		e.vels[i] = e.knotVelocity(i)
	}
	for i := 0; i < n; i++ {
		seg := e.hermite(i)
		e.segments = append(e.segments, seg)
		e.vertices = seg.tessellate(e.vertices, e.cfg.Samples, e.cfg.CurveColor)
	}
	tracer().Infof("recomputed curve: %d knots, %d segments, %d vertices",
		n, len(e.segments), len(e.vertices))
}

// Velocity at z.i, estimated from its neighbours z.[i-1] and z.[i+1] (mod N).
// dt0 is the duration of the incoming segment, dt1 that of the outgoing one.
// For a two-knot curve both neighbours are the same knot.
func (e *Engine) knotVelocity(i int) starpath.Pair {
	zi := e.Point(i).Position
	before := e.Point(i - 1).Position
	after := e.Point(i + 1).Position
	dt0 := e.Point(i).Dwell
	dt1 := e.Point(i + 1).Dwell
	return knotVelocity(zi, before, after, dt0, dt1, e.cfg.VelocityDamping)
}

func knotVelocity(zi, before, after starpath.Pair, dt0, dt1, damping float64) starpath.Pair {
	return ((after - zi).Div(dt1) + (zi - before).Div(dt0)).Mul(damping)
}

// Hermite coefficients of the segment from z.i to z.[i+1]. The segment lasts
// as long as the dwell of its end knot.
func (e *Engine) hermite(i int) Segment {
	x0, x1 := e.Point(i).Position, e.Point(i+1).Position
	v0, v1 := e.Velocity(i), e.Velocity(i+1)
	return hermite(x0, x1, v0, v1, e.Point(i+1).Dwell)
}

func hermite(x0, x1, v0, v1 starpath.Pair, dt float64) Segment {
	dt2 := dt * dt
	dt3 := dt2 * dt
	return Segment{
		A0:       x0,
		A1:       v0,
		A2:       (x1 - x0).Mul(3).Div(dt2) - (v1 + v0.Mul(2)).Div(dt),
		A3:       (x0 - x1).Mul(2).Div(dt3) + (v1 + v0).Div(dt2),
		Duration: dt,
	}
}
