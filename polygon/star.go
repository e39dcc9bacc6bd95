package polygon

import "github.com/npillmayer/starpath"

// spikes of the star sprite: apex, then the two corners of the base
var starSpikes = [8][3]starpath.Pair{
	{starpath.P(0, 2), starpath.P(-0.5, 0), starpath.P(0.5, 0)},
	{starpath.P(1.41, 1.41), starpath.P(0.35, -0.35), starpath.P(-0.35, 0.35)},
	{starpath.P(2, 0), starpath.P(0, 0.5), starpath.P(0, -0.5)},
	{starpath.P(1.41, -1.41), starpath.P(0.35, 0.35), starpath.P(-0.35, -0.35)},
	{starpath.P(0, -2), starpath.P(-0.5, 0), starpath.P(0.5, 0)},
	{starpath.P(-1.41, -1.41), starpath.P(0.35, -0.35), starpath.P(-0.35, 0.35)},
	{starpath.P(-2, 0), starpath.P(0, 0.5), starpath.P(0, -0.5)},
	{starpath.P(-1.41, 1.41), starpath.P(0.35, 0.35), starpath.P(-0.35, -0.35)},
}

// Star returns the eight spike triangles of the star sprite in model
// coordinates. The star has a radius of 2 around the origin.
func Star() Shape {
	s := make(Shape, 0, len(starSpikes))
	for _, spike := range starSpikes {
		s = append(s, NullPolygon().Knot(spike[0]).Knot(spike[1]).Knot(spike[2]).Cycle())
	}
	return s
}
