package catmull

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/starpath"
)

// AsString returns the knots and segment durations of a curve as a
// (debugging) string, e.g.
//
//	(1,2) .. {350} .. (4,3) .. {550} .. (2,-1) .. {500} .. cycle
//
// Durations are shown between the knots they connect. Curves with fewer than
// two knots are not closed and print without durations.
func AsString(e *Engine) string {
	var sb strings.Builder
	n := e.VertexCount()
	for i := 0; i < n; i++ {
		if i > 0 {
			if e.SegmentCount() > 0 {
				sb.WriteString(fmt.Sprintf(" .. {%g} .. ", round(e.Segment(i-1).Duration)))
			} else {
				sb.WriteString(" .. ")
			}
		}
		sb.WriteString(ptstring(e.Point(i).Position))
	}
	if e.SegmentCount() > 0 {
		sb.WriteString(fmt.Sprintf(" .. {%g} .. cycle", round(e.Segment(n-1).Duration)))
	}
	return sb.String()
}

func ptstring(p starpath.Pair) string {
	if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
		return "(<unknown>)"
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	return math.Round(x*10000.0) / 10000.0
}
