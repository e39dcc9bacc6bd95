// Package catmull deals with closed, time-parameterized interpolating curves.
// It provides a Catmull-Rom style spline engine which builds a piecewise
// cubic curve through user-placed control points, with velocity continuity
// at every knot.
/*

Every control point carries the time of its arrival. The time between two
consecutive arrivals (the "dwell" of the later point) becomes the duration of
the curve segment ending at that point. A point moving along the curve
therefore retraces the rhythm in which the knots were placed. The curve is
closed as soon as it holds two knots: the last segment runs from the newest
knot back to the first one, and its duration is the dwell of the first knot
(a fixed default, 500 ms).

Tangents at the knots are estimated from the neighbouring knots by finite
differences over the two adjacent durations, scaled by a damping factor
(0.9) to keep the curve from overshooting:

   v.i = 0.9 * ( (z.[i+1] - z.i)/dt.[i+1] + (z.i - z.[i-1])/dt.i )

with knot indices taken modulo N. Each segment is then a cubic Hermite
polynomial in its local time τ ∈ [0, dt]:

   z(τ) = a3*τ^3 + a2*τ^2 + a1*τ + a0

Usage

Clients create an engine and append knots, usually in response to mouse
clicks:

   curve := catmull.New(catmull.DefaultConfig())
   curve.Insert(starpath.P(1, 2), 0)
   curve.Insert(starpath.P(4, 3), 350)
   curve.Insert(starpath.P(2, -1), 900)

Every insertion recomputes all velocities, segment coefficients and the
tessellated vertex buffer from scratch. This is O(N*samples), which is fine
for the small, fixed capacity of the engine (20 knots) and a human-paced
insertion rate. The engine silently ignores knots beyond its capacity.

Moving along the curve is done with a Cursor, owned by whoever traverses
the curve:

   var cursor catmull.Cursor
   pos := curve.Query(elapsedMillis, &cursor)

Query advances the cursor by at most one segment per call and loops back
to the first segment after the closing one.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmull
