package motion

import "github.com/npillmayer/starpath"

// AttractParams are the constants of the attraction integrator.
type AttractParams struct {
	K           float64 // attraction strength
	Damping     float64 // speed factor applied every tick, < 1
	MinDistance float64 // distance floor, keeps K/d² finite
}

// Params configure agents.
type Params struct {
	TimeScale      float64       // converts agent time (s) to curve time (ms)
	PlacementScale float64       // attractors are placed at PlacementScale × click position
	Home           starpath.Pair // position of an agent before it is placed
	Attraction     AttractParams
}

// DefaultParams returns the parameters of the interactive scene.
func DefaultParams() Params {
	return Params{
		TimeScale:      1000,
		PlacementScale: -0.8,
		Home:           starpath.P(-15, -15),
		Attraction: AttractParams{
			K:           0.007,
			Damping:     0.95,
			MinDistance: 1.0,
		},
	}
}

func (prm Params) normalized() Params {
	def := DefaultParams()
	if prm.TimeScale <= 0 {
		prm.TimeScale = def.TimeScale
	}
	if prm.PlacementScale == 0 {
		prm.PlacementScale = def.PlacementScale
	}
	if prm.Attraction.K <= 0 {
		prm.Attraction.K = def.Attraction.K
	}
	if prm.Attraction.Damping <= 0 || prm.Attraction.Damping >= 1 {
		tracer().Debugf("damping %g out of range (0,1), using %g",
			prm.Attraction.Damping, def.Attraction.Damping)
		prm.Attraction.Damping = def.Attraction.Damping
	}
	if prm.Attraction.MinDistance <= 0 {
		prm.Attraction.MinDistance = def.Attraction.MinDistance
	}
	return prm
}
