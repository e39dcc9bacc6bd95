package catmull

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starpath"
)

// tracer writes to trace with key 'catmull'
func tracer() tracing.Trace {
	return tracing.Select("catmull")
}

// Default parameters of an engine.
const (
	DefaultCapacity        = 20    // maximum number of knots
	DefaultSamples         = 700   // tessellation samples per segment
	DefaultDwell           = 500.0 // dwell of the first knot, in ms
	DefaultMinDwell        = 1e-3  // floor for non-monotonic arrival times, in ms
	DefaultVelocityDamping = 0.9   // tangent scale factor
)

// Color is an RGB display color with components in [0,1].
type Color struct {
	R, G, B float32
}

// Config holds the tunables of an engine. Zero or negative fields are
// replaced by their defaults.
type Config struct {
	Capacity        int     // maximum number of knots; further insertions are ignored
	Samples         int     // tessellation samples per segment
	DefaultDwell    float64 // dwell of the first knot
	MinDwell        float64 // smallest dwell accepted for later knots
	VelocityDamping float64 // factor applied to estimated knot velocities
	CurveColor      Color   // color of tessellated curve vertices
	KnotColor       Color   // color of the single vertex of a one-knot curve
}

// DefaultConfig returns the configuration used by the interactive scene.
func DefaultConfig() Config {
	return Config{
		Capacity:        DefaultCapacity,
		Samples:         DefaultSamples,
		DefaultDwell:    DefaultDwell,
		MinDwell:        DefaultMinDwell,
		VelocityDamping: DefaultVelocityDamping,
		CurveColor:      Color{R: 1, G: 0, B: 0},
		KnotColor:       Color{R: 1, G: 1, B: 1},
	}
}

func (cfg Config) normalized() Config {
	def := DefaultConfig()
	if cfg.Capacity <= 0 {
		tracer().Debugf("capacity %d invalid, using %d", cfg.Capacity, def.Capacity)
		cfg.Capacity = def.Capacity
	}
	if cfg.Samples <= 0 {
		tracer().Debugf("sample count %d invalid, using %d", cfg.Samples, def.Samples)
		cfg.Samples = def.Samples
	}
	if cfg.DefaultDwell <= 0 {
		cfg.DefaultDwell = def.DefaultDwell
	}
	if cfg.MinDwell <= 0 {
		cfg.MinDwell = def.MinDwell
	}
	if cfg.VelocityDamping <= 0 {
		cfg.VelocityDamping = def.VelocityDamping
	}
	if cfg.CurveColor == (Color{}) {
		cfg.CurveColor = def.CurveColor
	}
	if cfg.KnotColor == (Color{}) {
		cfg.KnotColor = def.KnotColor
	}
	return cfg
}

// ControlPoint is a knot of the curve together with its arrival time.
// Dwell is the time elapsed since the arrival of the previous knot
// (or the configured default dwell for the first knot).
type ControlPoint struct {
	Position starpath.Pair
	Arrival  float64
	Dwell    float64
}

// Segment holds the cubic Hermite coefficients of the curve piece between
// two consecutive knots, parameterized by local time τ ∈ [0, Duration].
type Segment struct {
	A0, A1, A2, A3 starpath.Pair
	Duration       float64
}

// Vertex is an interleaved position+color record of the tessellated curve,
// laid out as five consecutive floats.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// Engine is the spline engine. It owns the knots, the knot velocities, the
// segment coefficients and the tessellated vertex buffer. All buffers are
// allocated once, sized to the engine's capacity.
type Engine struct {
	cfg        Config
	points     []ControlPoint  // knot i
	vels       []starpath.Pair // velocity at knot i
	segments   []Segment       // segment i runs from knot i to knot i+1 (mod N)
	vertices   []Vertex        // tessellation of all segments
	dirty      bool            // vertices changed since last upload
	recomputes int             // number of full recomputations
}

// Cursor is the traversal state of one follower of a curve. The zero value
// is ready to use; it starts on segment 0 at the time of its first query.
type Cursor struct {
	segment int           // current segment index
	start   float64       // time the current segment was entered
	started bool          // start has been set
	atFinal bool          // cursor is on the closing segment
	seen    int           // segment count at the last query
	last    starpath.Pair // last position returned
}
