package scene

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/starpath"
	"github.com/npillmayer/starpath/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clickTriangle(s *Scene) {
	s.Click(starpath.P(0.5, 0.5), 0.2)
	s.Click(starpath.P(-0.5, 0.3), 0.6)
	s.Click(starpath.P(0.1, -0.6), 1.1)
}

func TestNewScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	require.Len(t, s.Sprites(), 3)
	assert.IsType(t, &motion.Follower{}, s.Sprites()[0].Agent)
	assert.IsType(t, &motion.Attractor{}, s.Sprites()[1].Agent)
	assert.Equal(t, starpath.P(-15, -15), s.Target())
	for _, sp := range s.Sprites() {
		assert.False(t, sp.Agent.Placed())
		assert.Equal(t, starpath.P(-15, -15), sp.Agent.Position())
	}
}

func TestClickInsertsWorldKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	require.True(t, s.Click(starpath.P(0.5, -0.5), 1.25))
	require.Equal(t, 1, s.Curve().VertexCount())
	k := s.Curve().Point(0)
	assert.True(t, k.Position.Equal(starpath.P(5, -5)))
	assert.Equal(t, 1250.0, k.Arrival)
}

func TestFirstClickPlacesSprites(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	s.Click(starpath.P(0.5, -0.5), 0.1)
	sp := s.Sprites()
	assert.True(t, sp[0].Agent.Position().Equal(starpath.P(5, -5)))
	assert.True(t, sp[1].Agent.Position().Equal(starpath.P(-4, 2.4)), "got %v", sp[1].Agent.Position())
	assert.True(t, sp[2].Agent.Position().Equal(starpath.P(-2.4, 4.8)), "got %v", sp[2].Agent.Position())
	s.Click(starpath.P(-0.5, 0.5), 0.4)
	assert.True(t, sp[0].Agent.Position().Equal(starpath.P(5, -5)), "sprites are placed once")
	assert.True(t, sp[1].Agent.Position().Equal(starpath.P(-4, 2.4)))
}

func TestTickFeedsCurrentTarget(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	clickTriangle(s)
	s.Tick(1.5)
	attractor := s.Sprites()[1].Agent.(*motion.Attractor)
	prevPos, prevSpeed := attractor.Position(), attractor.Speed()
	s.Tick(1.6)
	follower := s.Sprites()[0].Agent
	assert.Equal(t, follower.Position(), s.Target())
	want, _ := motion.Attract(prevPos, follower.Position(), prevSpeed, motion.DefaultParams().Attraction)
	assert.Equal(t, want, attractor.Position())
}

func TestFollowerStaysOffCurveUntilClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	s.Click(starpath.P(0.5, 0.5), 0)
	s.Tick(0.5)
	assert.True(t, s.Sprites()[0].Agent.Position().Equal(starpath.P(5, 5)))
	assert.Equal(t, starpath.P(-15, -15), s.Target())
}

func TestCameraFollowsTarget(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	clickTriangle(s)
	s.Tick(2)
	assert.True(t, s.Camera().Center().IsOrigin())
	s.SetFollow(true)
	assert.Equal(t, s.Target(), s.Camera().Center())
	s.Tick(2.1)
	assert.Equal(t, s.Target(), s.Camera().Center())
	s.SetFollow(false)
	assert.True(t, s.Camera().Center().IsOrigin())
}

func TestSaturatedSceneIgnoresClicks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	cfg.Curve.Capacity = 2
	s := New(cfg)
	assert.True(t, s.Click(starpath.P(0, 0), 0))
	assert.True(t, s.Click(starpath.P(0.5, 0), 1))
	assert.False(t, s.Click(starpath.P(0.5, 0.5), 2))
	assert.Equal(t, 2, s.Curve().VertexCount())
}

func TestHitTest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New(DefaultConfig())
	_, hit := s.HitTest(starpath.P(-15, -14))
	assert.False(t, hit, "unplaced sprites cannot be hit")
	s.Click(starpath.P(0.5, 0.5), 0)
	s.Tick(math.Pi / 2) // full scale
	sp, hit := s.HitTest(starpath.P(5, 6))
	require.True(t, hit)
	assert.Equal(t, "shiny", sp.Name)
	_, hit = s.HitTest(starpath.P(0, 0))
	assert.False(t, hit)
}
