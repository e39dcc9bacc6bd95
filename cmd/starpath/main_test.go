package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/starpath"
	"github.com/npillmayer/starpath/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickScript(t *testing.T) {
	script := clickScript(4)
	require.Len(t, script, 4)
	assert.InDelta(t, 0.6, script[0].ndc.X(), 1e-9)
	assert.InDelta(t, 0.5, script[1].ndc.Y(), 1e-9)
	for i := 1; i < len(script); i++ {
		assert.Greater(t, script[i].at, script[i-1].at)
	}
	assert.Empty(t, clickScript(0))
}

func TestRunWritesPNG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := filepath.Join(t.TempDir(), "frame.png")
	err := run(options{out: out, frames: 90, fps: 30, size: 64, clicks: 5})
	require.NoError(t, err)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunRejectsBadOptions(t *testing.T) {
	err := run(options{out: "x.png", frames: 0, fps: 30, size: 64})
	assert.ErrorIs(t, err, errUsage)
}

func TestOnTarget(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := scene.New(scene.DefaultConfig())
	assert.Equal(t, "none", onTarget(s), "nothing placed yet")
	// a click at (0,-0.1) puts the follower at (0,-1) and the first chaser
	// at (0,-0.8), so the target lies inside the chaser's lower spike
	s.Click(starpath.P(0, -0.1), 0)
	s.Click(starpath.P(0, -0.1), 0.5)
	s.Tick(math.Pi / 2)
	assert.True(t, s.Target().Near(starpath.P(0, -1), 1e-9), "target at %v", s.Target())
	assert.Equal(t, "not so shiny", onTarget(s))
}

func TestRunWithOutlines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := filepath.Join(t.TempDir(), "outlined.png")
	require.NoError(t, run(options{out: out, frames: 30, fps: 30, size: 48, clicks: 3, outline: true}))
}
