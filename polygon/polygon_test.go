package polygon

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/starpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(starpath.P(0, 0)).Knot(starpath.P(1, 3)).Knot(starpath.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.Equal(t, starpath.P(0, 0), pg.Pt(3))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(starpath.P(0, 5), starpath.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	ll, ur := box.BoundingBox()
	assert.Equal(t, starpath.P(0, 1), ll)
	assert.Equal(t, starpath.P(4, 5), ur)
	assert.True(t, box.Contains(starpath.P(2, 3)))
	assert.False(t, box.Contains(starpath.P(5, 3)))
}

func TestDegeneratePolygonContainsNothing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(starpath.P(0, 0)).Knot(starpath.P(1, 1))
	assert.False(t, pg.Contains(starpath.P(0.5, 0.5)))
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(starpath.P(0, 0), starpath.P(1, 1))
	moved := box.Transformed(starpath.Scaling(2, 2).Combine(starpath.Translation(starpath.P(10, 0))))
	ll, ur := moved.BoundingBox()
	assert.True(t, ll.Equal(starpath.P(10, 0)))
	assert.True(t, ur.Equal(starpath.P(12, 2)))
	assert.True(t, moved.IsCycle())
	ll, _ = box.BoundingBox()
	assert.True(t, ll.IsOrigin(), "original polygon is unchanged")
}

func TestOutlineOfOverlappingBoxes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := Shape{Box(starpath.P(0, 0), starpath.P(2, 2)), Box(starpath.P(1, 1), starpath.P(3, 3))}
	outline := s.Outline()
	assert.NotEmpty(t, outline)
	ll, ur := outline.BoundingBox()
	assert.True(t, ll.Equal(starpath.P(0, 0)), "ll = %v", ll)
	assert.True(t, ur.Equal(starpath.P(3, 3)), "ur = %v", ur)
	assert.True(t, outline.Contains(starpath.P(0.5, 0.5)))
	assert.True(t, outline.Contains(starpath.P(2.5, 2.5)))
	assert.False(t, outline.Contains(starpath.P(2.5, 0.5)))
	assert.Nil(t, Shape{}.Outline())
}

func TestStar(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	star := Star()
	assert.Len(t, star, 8)
	for _, spike := range star {
		assert.Equal(t, 3, spike.N())
	}
	ll, ur := star.BoundingBox()
	assert.Equal(t, starpath.P(-2, -2), ll)
	assert.Equal(t, starpath.P(2, 2), ur)
	assert.True(t, star.Contains(starpath.P(0.05, 0.3)))
	assert.True(t, star.Contains(starpath.P(0, 1.9)))
	assert.True(t, star.Contains(starpath.P(-1.9, 0)))
	assert.False(t, star.Contains(starpath.P(1.9, 1.9)))
	assert.False(t, star.Contains(starpath.P(1.5, 0.6)))
}

func TestStarOutline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	outline := Star().Outline()
	require.NotEmpty(t, outline)
	ll, ur := outline.BoundingBox()
	assert.True(t, ll.Near(starpath.P(-2, -2), 1e-9), "lower left is %v", ll)
	assert.True(t, ur.Near(starpath.P(2, 2), 1e-9), "upper right is %v", ur)
	assert.True(t, outline.Contains(starpath.P(0, 1.9)))
	assert.False(t, outline.Contains(starpath.P(1.9, 1.9)))
}

func TestTransformedStar(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := starpath.Rotation(math.Pi / 2).Combine(starpath.Translation(starpath.P(5, 5)))
	star := Star().Transformed(m)
	// the upward spike now points to the left
	assert.True(t, star.Contains(starpath.P(5-1.9, 5)))
	assert.False(t, star.Contains(starpath.P(0.05, 0.3)))
}
