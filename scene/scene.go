/*
Package scene glues the spline engine and the motion agents into the
interactive scene: a curve drawn by mouse clicks, one star travelling along
it and two stars chasing the first one. It plays the part of the
event-loop collaborator, minus the window: clients feed it clicks in
normalized device coordinates and frame times, and read back what to draw.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starpath"
	"github.com/npillmayer/starpath/catmull"
	"github.com/npillmayer/starpath/motion"
	"github.com/npillmayer/starpath/polygon"
)

// tracer writes to trace with key 'scene'
func tracer() tracing.Trace {
	return tracing.Select("scene")
}

// SpriteConfig describes one star of the scene.
type SpriteConfig struct {
	Name   string
	Color  catmull.Color
	Offset starpath.Pair // added to the first click, in device coordinates
}

// Config holds the layout of a scene.
type Config struct {
	WorldWidth  float64 // width of the camera window in world coordinates
	WorldHeight float64 // height of the camera window in world coordinates
	Curve       catmull.Config
	Motion      motion.Params
	Follower    SpriteConfig
	Attractors  []SpriteConfig
}

// DefaultConfig returns the layout of the interactive demo: a white star
// on the curve, chased by a yellow and a pink one.
func DefaultConfig() Config {
	return Config{
		WorldWidth:  20,
		WorldHeight: 20,
		Curve:       catmull.DefaultConfig(),
		Motion:      motion.DefaultParams(),
		Follower:    SpriteConfig{Name: "shiny", Color: catmull.Color{R: 1, G: 1, B: 1}},
		Attractors: []SpriteConfig{
			{Name: "not so shiny", Color: catmull.Color{R: 1, G: 1, B: 0}, Offset: starpath.P(0, 0.2)},
			{Name: "definitely not shiny", Color: catmull.Color{R: 1, G: 0, B: 0.8}, Offset: starpath.P(-0.2, -0.1)},
		},
	}
}

// Sprite is a star of the scene, driven by an agent.
type Sprite struct {
	Name   string
	Color  catmull.Color
	Agent  motion.Agent
	offset starpath.Pair
}

// Shape returns the star triangles of the sprite in world coordinates.
func (sp *Sprite) Shape() polygon.Shape {
	return polygon.Star().Transformed(sp.Agent.Transform())
}

// Scene is the animated world. It is not safe for concurrent use; clicks
// and ticks are expected to come from the same event loop.
type Scene struct {
	camera   *Camera
	curve    *catmull.Engine
	sprites  []*Sprite
	target   starpath.Pair
	timeUnit float64
}

// New creates a scene without any knots.
func New(cfg Config) *Scene {
	if cfg.WorldWidth <= 0 || cfg.WorldHeight <= 0 {
		cfg.WorldWidth, cfg.WorldHeight = 20, 20
	}
	curve := catmull.New(cfg.Curve)
	follower := motion.NewFollower(curve, cfg.Motion)
	s := &Scene{
		camera:   NewCamera(cfg.WorldWidth, cfg.WorldHeight),
		curve:    curve,
		target:   cfg.Motion.Home,
		timeUnit: follower.TimeScale(),
	}
	s.sprites = append(s.sprites, &Sprite{
		Name:   cfg.Follower.Name,
		Color:  cfg.Follower.Color,
		Agent:  follower,
		offset: cfg.Follower.Offset,
	})
	for _, a := range cfg.Attractors {
		s.sprites = append(s.sprites, &Sprite{
			Name:   a.Name,
			Color:  a.Color,
			Agent:  motion.NewAttractor(cfg.Motion),
			offset: a.Offset,
		})
	}
	s.camera.Animate(s.target)
	return s
}

// Click handles a mouse click at ndc (normalized device coordinates) at
// time t (in seconds). The click adds a knot to the curve and, on first
// click, puts the sprites on screen. It reports whether the curve took the
// knot; a saturated curve ignores further clicks.
func (s *Scene) Click(ndc starpath.Pair, t float64) bool {
	world := s.camera.ToWorld(ndc)
	accepted := s.curve.Insert(world, t*s.timeUnit)
	for _, sp := range s.sprites {
		if sp.Agent.Place(s.camera.ToWorld(ndc + sp.offset)) {
			tracer().Infof("sprite %q on screen at %s", sp.Name, sp.Agent.Position())
		}
	}
	tracer().Debugf("click at %s -> world %s, accepted = %v", ndc, world, accepted)
	return accepted
}

// Tick animates the scene to time t (in seconds). Followers move first and
// publish the target, then the camera catches up, then the attractors chase
// the target of this very frame.
func (s *Scene) Tick(t float64) {
	target := s.target
	for _, sp := range s.sprites {
		if f, ok := sp.Agent.(*motion.Follower); ok {
			target = f.Advance(t, target)
		}
	}
	s.camera.Animate(target)
	for _, sp := range s.sprites {
		if a, ok := sp.Agent.(*motion.Attractor); ok {
			a.Advance(t, target)
		}
	}
	s.target = target
}

// SetFollow switches the camera's follow mode (bound to the space key in
// the interactive version).
func (s *Scene) SetFollow(on bool) {
	s.camera.SetFollow(on)
	s.camera.Animate(s.target)
}

// HitTest returns the topmost placed sprite whose star covers the world
// point p.
func (s *Scene) HitTest(p starpath.Pair) (*Sprite, bool) {
	for i := len(s.sprites) - 1; i >= 0; i-- {
		sp := s.sprites[i]
		if sp.Agent.Placed() && sp.Shape().Contains(p) {
			return sp, true
		}
	}
	return nil, false
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Curve returns the scene's spline engine.
func (s *Scene) Curve() *catmull.Engine {
	return s.curve
}

// Sprites returns the sprites in drawing order, the curve follower first.
func (s *Scene) Sprites() []*Sprite {
	return s.sprites
}

// Target returns the target published in the last frame.
func (s *Scene) Target() starpath.Pair {
	return s.target
}
