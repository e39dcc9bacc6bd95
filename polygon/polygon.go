/*
Package polygon provides polygons for sprite geometry and hit testing.
Polygons are thin wrappers around contours of package polyclip, which also
does the heavy lifting for boolean operations.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starpath"
)

// L traces with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a closed contour of knots. To construct a polygon, start with
// NullPolygon() and add knots to it.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a corner point. Part of builder functionality.
func (pg *Polygon) Knot(p starpath.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangle from two opposite corners.
func Box(a, b starpath.Pair) *Polygon {
	return NullPolygon().
		Knot(a).
		Knot(starpath.P(b.X(), a.Y())).
		Knot(b).
		Knot(starpath.P(a.X(), b.Y())).
		Cycle()
}

// IsCycle is a predicate: has Cycle() been called?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i (mod N).
func (pg *Polygon) Pt(i int) starpath.Pair {
	n := pg.N()
	pt := pg.contour[((i%n)+n)%n]
	return starpath.P(pt.X, pt.Y)
}

// Transformed returns a copy of pg with every knot mapped by m.
func (pg *Polygon) Transformed(m starpath.AT) *Polygon {
	t := &Polygon{
		contour: make(polyclip.Contour, 0, pg.N()),
		cycle:   pg.cycle,
	}
	for i := 0; i < pg.N(); i++ {
		t.Knot(m.Transform(pg.Pt(i)))
	}
	return t
}

// Contains is a predicate: is p inside the polygon? Points on the border
// may go either way.
func (pg *Polygon) Contains(p starpath.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// BoundingBox returns the lower left and upper right corner of the
// smallest axis-aligned box enclosing the polygon.
func (pg *Polygon) BoundingBox() (starpath.Pair, starpath.Pair) {
	r := pg.contour.BoundingBox()
	return starpath.P(r.Min.X, r.Min.Y), starpath.P(r.Max.X, r.Max.Y)
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g)", pg.contour[i].X, pg.contour[i].Y))
	}
	if pg.IsCycle() {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
