package catmull

import (
	"math"

	"github.com/npillmayer/starpath"
)

// New creates an empty engine. Buffers for knots, velocities, segments and
// tessellated vertices are allocated up front for the configured capacity.
func New(cfg Config) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:      cfg,
		points:   make([]ControlPoint, 0, cfg.Capacity),
		vels:     make([]starpath.Pair, 0, cfg.Capacity),
		segments: make([]Segment, 0, cfg.Capacity),
		vertices: make([]Vertex, 0, cfg.Capacity*cfg.Samples),
	}
}

// Config returns the effective configuration of the engine.
func (e *Engine) Config() Config {
	return e.cfg
}

// Insert appends a knot at position p, arriving at time now. Time units are
// up to the client, but arrival times must increase monotonically; a knot
// arriving no later than its predecessor gets the minimum dwell.
//
// Insert is a no-op once the engine holds Capacity knots. This saturation is
// intentional, not an error: the return value just reports whether the knot
// has been taken. Knots with NaN or infinite coordinates are rejected as well.
//
// Every accepted knot triggers a full recomputation of velocities, segment
// coefficients and tessellation, and marks the vertex buffer dirty.
func (e *Engine) Insert(p starpath.Pair, now float64) bool {
	n := len(e.points)
	if n >= e.cfg.Capacity {
		tracer().Debugf("curve saturated at %d knots, ignoring %s", n, ptstring(p))
		return false
	}
	if !finite(p.X()) || !finite(p.Y()) || !finite(now) {
		tracer().Errorf("invalid knot %s at time %g, ignoring", p, now)
		return false
	}
	dwell := e.cfg.DefaultDwell
	if n > 0 {
		dwell = now - e.points[n-1].Arrival
		if dwell < e.cfg.MinDwell {
			tracer().Errorf("knot %d arrives at %g, too close to %g; dwell set to %g",
				n, now, e.points[n-1].Arrival, e.cfg.MinDwell)
			dwell = e.cfg.MinDwell
		}
	}
	e.points = append(e.points, ControlPoint{Position: p, Arrival: now, Dwell: dwell})
	e.recompute()
	e.dirty = true
	return true
}

// VertexCount returns the number of knots currently held (0 … Capacity).
func (e *Engine) VertexCount() int {
	return len(e.points)
}

// SegmentCount returns the number of curve segments. A curve with at least
// two knots is closed and has as many segments as knots, otherwise there
// are no segments.
func (e *Engine) SegmentCount() int {
	return len(e.segments)
}

// Point returns knot i (mod N). It panics on an empty engine.
func (e *Engine) Point(i int) ControlPoint {
	return e.points[e.wrap(i)]
}

// Velocity returns the estimated velocity at knot i (mod N).
func (e *Engine) Velocity(i int) starpath.Pair {
	return e.vels[e.wrap(i)]
}

// Segment returns segment i (mod SegmentCount). It panics if the curve has
// no segments.
func (e *Engine) Segment(i int) Segment {
	n := len(e.segments)
	return e.segments[((i%n)+n)%n]
}

// Eval evaluates segment i at local time tau.
func (e *Engine) Eval(i int, tau float64) starpath.Pair {
	return e.Segment(i).At(tau)
}

// Recomputations returns how many times the curve has been rebuilt.
func (e *Engine) Recomputations() int {
	return e.recomputes
}

// TessellatedVertices returns the current vertex buffer: N*Samples curve
// vertices for a closed curve, a single knot vertex for a one-knot curve
// and nothing for an empty one. The slice is owned by the engine and must
// be treated as read-only; it is valid until the next insertion.
func (e *Engine) TessellatedVertices() []Vertex {
	return e.vertices
}

// Dirty reports whether the vertex buffer changed since the last call to
// MarkUploaded.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// MarkUploaded is called by a renderer after it has consumed the vertex buffer.
func (e *Engine) MarkUploaded() {
	e.dirty = false
}

func (e *Engine) wrap(i int) int {
	n := len(e.points)
	return ((i % n) + n) % n
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
