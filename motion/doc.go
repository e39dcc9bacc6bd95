/*
Package motion moves sprites around the scene. A sprite is driven by an
Agent, which is either a Follower, travelling along a catmull curve, or an
Attractor, roaming freely and chasing a target.

The Follower's position on the curve is published as the target for all
Attractors of a frame. There is no shared global for this: the per-frame
driver threads the target through the agents,

   target = follower.Advance(t, target)
   for _, a := range attractors {
       a.Advance(t, target)
   }

so Attractors always chase the position of the current frame.

Attractors accelerate towards the target by an inverse-square law with a
distance floor and lose a fixed fraction of their speed every tick. Their
speed is a single scalar applied to both axes, with a sign per axis; the
resulting diagonal bias is part of the intended look.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package motion
