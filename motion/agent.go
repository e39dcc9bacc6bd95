package motion

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starpath"
)

// tracer writes to trace with key 'motion'
func tracer() tracing.Trace {
	return tracing.Select("motion")
}

// Agent is a movable entity of the scene. The set of implementations is
// closed: an agent is either a *Follower or an *Attractor, decided at
// construction.
type Agent interface {
	// Place puts the agent on screen. Only the first call has an effect;
	// it reports whether the agent has been placed by this call.
	Place(p starpath.Pair) bool
	// Advance moves the agent to time t (in seconds). It receives the
	// target published so far in this frame and returns the target to
	// publish onwards.
	Advance(t float64, target starpath.Pair) starpath.Pair
	Position() starpath.Pair
	Orientation() Spin
	Placed() bool
	// Transform maps sprite model coordinates to world coordinates.
	Transform() starpath.AT
	sealed()
}

var (
	_ Agent = (*Follower)(nil)
	_ Agent = (*Attractor)(nil)
)

// Spin is the purely visual scale and rotation of a sprite.
type Spin struct {
	Scale float64 // uniform scale factor
	Angle float64 // rotation angle in radians
}

// SpinAt returns the spin at time t (in seconds): the scale pulses with
// |sin t| and the sprite turns by 4 radians per second.
func SpinAt(t float64) Spin {
	return Spin{
		Scale: math.Abs(math.Sin(t)),
		Angle: 4 * t,
	}
}

// body is the state common to all agents.
type body struct {
	pos    starpath.Pair
	spin   Spin
	placed bool
}

// Position returns the agent's position in world coordinates.
func (b *body) Position() starpath.Pair {
	return b.pos
}

// Orientation returns the agent's current spin.
func (b *body) Orientation() Spin {
	return b.spin
}

// Placed reports whether the agent has been put on screen.
func (b *body) Placed() bool {
	return b.placed
}

// Transform scales, then rotates, then translates to the agent's position.
// Sprites spin clockwise.
func (b *body) Transform() starpath.AT {
	return starpath.Scaling(b.spin.Scale, b.spin.Scale).
		Combine(starpath.Rotation(-b.spin.Angle)).
		Combine(starpath.Translation(b.pos))
}

func (b *body) sealed() {}
