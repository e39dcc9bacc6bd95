package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/starpath"
)

// Shape is a set of polygons which may overlap. A point is inside a shape
// if it is inside any of its polygons.
type Shape []*Polygon

// Contains is a predicate: is p inside any polygon of the shape?
func (s Shape) Contains(p starpath.Pair) bool {
	for _, pg := range s {
		if pg.Contains(p) {
			return true
		}
	}
	return false
}

// Transformed maps every polygon of the shape by m.
func (s Shape) Transformed(m starpath.AT) Shape {
	t := make(Shape, len(s))
	for i, pg := range s {
		t[i] = pg.Transformed(m)
	}
	return t
}

// BoundingBox returns the lower left and upper right corner of the box
// enclosing all polygons of the shape.
func (s Shape) BoundingBox() (starpath.Pair, starpath.Pair) {
	r := s.clip().BoundingBox()
	return starpath.P(r.Min.X, r.Min.Y), starpath.P(r.Max.X, r.Max.Y)
}

// Outline merges the polygons of the shape into non-overlapping contours.
// Holes of the union are returned as contours as well; Contains on an
// outline with holes is not meaningful.
func (s Shape) Outline() Shape {
	if len(s) == 0 {
		return nil
	}
	union := polyclip.Polygon{s[0].contour}
	for _, pg := range s[1:] {
		union = union.Construct(polyclip.UNION, polyclip.Polygon{pg.contour})
	}
	out := make(Shape, 0, len(union))
	for _, c := range union {
		out = append(out, &Polygon{contour: c, cycle: true})
	}
	L().Debugf("outline of %d polygons has %d contours", len(s), len(out))
	return out
}

func (s Shape) clip() polyclip.Polygon {
	p := make(polyclip.Polygon, 0, len(s))
	for _, pg := range s {
		p.Add(pg.contour)
	}
	return p
}
