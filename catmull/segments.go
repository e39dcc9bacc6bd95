package catmull

import (
	"github.com/npillmayer/starpath"
)

// At evaluates the segment at local time tau.
func (seg Segment) At(tau float64) starpath.Pair {
	return seg.A3.Mul(tau*tau*tau) + seg.A2.Mul(tau*tau) + seg.A1.Mul(tau) + seg.A0
}

// VelocityAt is the first derivative of the segment at local time tau.
func (seg Segment) VelocityAt(tau float64) starpath.Pair {
	return seg.A3.Mul(3*tau*tau) + seg.A2.Mul(2*tau) + seg.A1
}

// Start is the position at τ = 0, i.e. the segment's first knot.
func (seg Segment) Start() starpath.Pair {
	return seg.A0
}

// End is the position at τ = Duration, i.e. the segment's second knot
// (up to rounding).
func (seg Segment) End() starpath.Pair {
	return seg.At(seg.Duration)
}

// Append samples equally spaced in local time, starting at τ = 0 and
// stopping short of τ = Duration (which is the next segment's first sample).
func (seg Segment) tessellate(buf []Vertex, samples int, color Color) []Vertex {
	step := seg.Duration / float64(samples)
	for j := 0; j < samples; j++ {
		buf = append(buf, vertex(seg.At(step*float64(j)), color))
	}
	return buf
}

func vertex(p starpath.Pair, color Color) Vertex {
	return Vertex{
		X: float32(p.X()),
		Y: float32(p.Y()),
		R: color.R,
		G: color.G,
		B: color.B,
	}
}

// Pos returns the position of a vertex.
func (v Vertex) Pos() starpath.Pair {
	return starpath.P(float64(v.X), float64(v.Y))
}
