package scene

import "github.com/npillmayer/starpath"

// Camera is a 2D camera looking at a window of the world. The window is
// centered either at the origin or, in follow mode, at the target published
// by the curve follower.
type Camera struct {
	center starpath.Pair // window center in world coordinates
	width  float64       // window width in world coordinates
	height float64       // window height in world coordinates
	follow bool
}

// NewCamera creates a camera with a world window of w × h, centered at the
// origin.
func NewCamera(w, h float64) *Camera {
	return &Camera{width: w, height: h}
}

// SetFollow switches follow mode on or off.
func (cam *Camera) SetFollow(on bool) {
	cam.follow = on
}

// Following reports whether the camera is in follow mode.
func (cam *Camera) Following() bool {
	return cam.follow
}

// Center returns the window center in world coordinates.
func (cam *Camera) Center() starpath.Pair {
	return cam.center
}

// Size returns the window width and height in world coordinates.
func (cam *Camera) Size() (float64, float64) {
	return cam.width, cam.height
}

// Animate updates the window center for the current frame.
func (cam *Camera) Animate(target starpath.Pair) {
	if cam.follow {
		cam.center = target
	} else {
		cam.center = starpath.Origin
	}
}

// View translates the window center to the origin.
func (cam *Camera) View() starpath.AT {
	return starpath.Translation(-cam.center)
}

// Projection scales the window to a square of edge length 2.
func (cam *Camera) Projection() starpath.AT {
	return starpath.Scaling(2/cam.width, 2/cam.height)
}

// ViewInv is the inverse of View.
func (cam *Camera) ViewInv() starpath.AT {
	return starpath.Translation(cam.center)
}

// ProjInv is the inverse of Projection.
func (cam *Camera) ProjInv() starpath.AT {
	return starpath.Scaling(cam.width/2, cam.height/2)
}

// ViewProjection maps world coordinates to normalized device coordinates.
func (cam *Camera) ViewProjection() starpath.AT {
	return cam.View().Combine(cam.Projection())
}

// ToWorld maps normalized device coordinates to world coordinates.
func (cam *Camera) ToWorld(ndc starpath.Pair) starpath.Pair {
	return cam.ProjInv().Combine(cam.ViewInv()).Transform(ndc)
}

// ToNDC maps world coordinates to normalized device coordinates.
func (cam *Camera) ToNDC(world starpath.Pair) starpath.Pair {
	return cam.ViewProjection().Transform(world)
}
