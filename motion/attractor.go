package motion

import (
	"math"

	"github.com/npillmayer/starpath"
)

// Attractor roams freely, chasing the target published each frame.
type Attractor struct {
	body
	speed          float64
	attraction     AttractParams
	placementScale float64
}

// NewAttractor creates an attractor resting at prm.Home.
func NewAttractor(prm Params) *Attractor {
	prm = prm.normalized()
	return &Attractor{
		body:           body{pos: prm.Home},
		attraction:     prm.Attraction,
		placementScale: prm.PlacementScale,
	}
}

// Place puts the attractor on screen, at PlacementScale × p. Until then it
// never moves.
func (a *Attractor) Place(p starpath.Pair) bool {
	if a.placed {
		return false
	}
	a.pos, a.placed = p.Mul(a.placementScale), true
	tracer().Debugf("attractor placed at %s", a.pos)
	return true
}

// Advance performs one integration step towards target, if the attractor
// has been placed. The target is passed on unchanged.
func (a *Attractor) Advance(t float64, target starpath.Pair) starpath.Pair {
	a.spin = SpinAt(t)
	if a.placed {
		a.pos, a.speed = Attract(a.pos, target, a.speed, a.attraction)
	}
	return target
}

// Speed is the current scalar speed of the attractor.
func (a *Attractor) Speed() float64 {
	return a.speed
}

// Attract is one tick of the attraction integrator: p moves towards g with
// a scalar speed, accelerated by K/d² and damped every tick.
//
//	d     = max(|g − p|, MinDistance)
//	speed = (speed + K/d²) · Damping
//
// Both axes move by the full speed, each in the direction of g.
func Attract(p, g starpath.Pair, speed float64, prm AttractParams) (starpath.Pair, float64) {
	d := math.Max(p.Dist(g), prm.MinDistance)
	speed = (speed + prm.K/(d*d)) * prm.Damping
	x, y := p.X(), p.Y()
	if x-g.X() < 0 {
		x += speed
	} else {
		x -= speed
	}
	if y-g.Y() < 0 {
		y += speed
	} else {
		y -= speed
	}
	return starpath.P(x, y), speed
}
