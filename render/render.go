/*
Package render rasterizes a scene with the gg 2D graphics library. It stands
in for the GPU renderer of the interactive program: the curve is drawn as a
line strip through the tessellated vertices, the stars as filled triangles.

The renderer keeps its own copy of the curve strip and refreshes it only when
the spline engine reports a changed vertex buffer, the same way a GPU client
would re-upload its vertex buffer object.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starpath"
	"github.com/npillmayer/starpath/catmull"
	"github.com/npillmayer/starpath/polygon"
	"github.com/npillmayer/starpath/scene"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Errors returned by the renderer.
var (
	ErrNoScene      = errors.New("render: no scene")
	ErrEmptyCanvas  = errors.New("render: canvas has zero size")
	ErrSizeMismatch = errors.New("render: context size differs from renderer size")
)

// Background is the clear color of a frame.
var Background = gg.RGB(0.7, 0.8, 0.7)

// Renderer draws scenes onto canvases of a fixed pixel size.
type Renderer struct {
	Width, Height int
	LineWidth     float64 // width of the curve strip in pixels
	PointSize     float64 // radius of the single knot marker in pixels
	Outlines      bool    // stroke the silhouette of every star
	strip         []catmull.Vertex
	star          polygon.Shape // spike triangles, model coordinates
	outline       polygon.Shape // union of the spikes, model coordinates
	uploads       int
}

// New creates a renderer for canvases of w × h pixels.
func New(w, h int) *Renderer {
	star := polygon.Star()
	return &Renderer{
		Width:     w,
		Height:    h,
		LineWidth: 2,
		PointSize: 3,
		star:      star,
		outline:   star.Outline(),
	}
}

// Upload copies the tessellated curve out of the engine if it changed since
// the last upload. It reports whether a copy has been made.
func (r *Renderer) Upload(curve *catmull.Engine) bool {
	if !curve.Dirty() {
		return false
	}
	vs := curve.TessellatedVertices()
	r.strip = append(r.strip[:0], vs...)
	curve.MarkUploaded()
	r.uploads++
	tracer().Debugf("uploaded %d curve vertices", len(vs))
	return true
}

// Uploads returns the number of vertex buffer uploads done so far.
func (r *Renderer) Uploads() int {
	return r.uploads
}

// Strip returns the renderer's copy of the curve vertices.
func (r *Renderer) Strip() []catmull.Vertex {
	return r.strip
}

// Draw paints a frame of scene s onto dc. The context must have the size of
// the renderer.
func (r *Renderer) Draw(dc *gg.Context, s *scene.Scene) error {
	if s == nil {
		return ErrNoScene
	}
	if dc.Width() != r.Width || dc.Height() != r.Height {
		return fmt.Errorf("%w: %d×%d, want %d×%d", ErrSizeMismatch,
			dc.Width(), dc.Height(), r.Width, r.Height)
	}
	r.Upload(s.Curve())
	dc.ClearWithColor(Background)
	vp := s.Camera().ViewProjection()
	for _, sp := range s.Sprites() {
		if err := r.drawSprite(dc, sp, vp); err != nil {
			return fmt.Errorf("drawing sprite %q: %w", sp.Name, err)
		}
	}
	if err := r.drawCurve(dc, vp); err != nil {
		return fmt.Errorf("drawing curve: %w", err)
	}
	return nil
}

// Frame renders scene s into a new context.
func (r *Renderer) Frame(s *scene.Scene) (*gg.Context, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, ErrEmptyCanvas
	}
	dc := gg.NewContext(r.Width, r.Height)
	if err := r.Draw(dc, s); err != nil {
		return nil, err
	}
	return dc, nil
}

// WritePNG renders scene s and writes it to w as a PNG image.
func (r *Renderer) WritePNG(w io.Writer, s *scene.Scene) error {
	dc, err := r.Frame(s)
	if err != nil {
		return err
	}
	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}

// drawSprite fills every spike on its own; the spikes differ in winding
// direction, so a single path would leave holes where they overlap.
func (r *Renderer) drawSprite(dc *gg.Context, sp *scene.Sprite, vp starpath.AT) error {
	m := sp.Agent.Transform().Combine(vp)
	dc.SetRGB(float64(sp.Color.R), float64(sp.Color.G), float64(sp.Color.B))
	for _, spike := range r.star {
		r.contour(dc, spike, m)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if !r.Outlines || starpath.Is0(sp.Agent.Orientation().Scale) {
		return nil
	}
	dc.SetRGB(float64(sp.Color.R)/2, float64(sp.Color.G)/2, float64(sp.Color.B)/2)
	dc.SetLineWidth(1)
	for _, c := range r.outline {
		r.contour(dc, c, m)
	}
	return dc.Stroke()
}

// contour adds the closed polygon pg, mapped by m to device coordinates, to
// the current path.
func (r *Renderer) contour(dc *gg.Context, pg *polygon.Polygon, m starpath.AT) {
	for i := 0; i < pg.N(); i++ {
		x, y := r.pixel(m.Transform(pg.Pt(i)))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func (r *Renderer) drawCurve(dc *gg.Context, vp starpath.AT) error {
	switch len(r.strip) {
	case 0:
		return nil
	case 1:
		v := r.strip[0]
		x, y := r.pixel(vp.Transform(v.Pos()))
		dc.SetRGB(float64(v.R), float64(v.G), float64(v.B))
		dc.DrawPoint(x, y, r.PointSize)
		return dc.Fill()
	}
	v := r.strip[0]
	dc.SetRGB(float64(v.R), float64(v.G), float64(v.B))
	dc.SetLineWidth(r.LineWidth)
	for i, v := range r.strip {
		x, y := r.pixel(vp.Transform(v.Pos()))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	return dc.Stroke()
}

// pixel maps normalized device coordinates to canvas pixels, y pointing down.
func (r *Renderer) pixel(ndc starpath.Pair) (float64, float64) {
	x := (ndc.X() + 1) / 2 * float64(r.Width)
	y := (1 - ndc.Y()) / 2 * float64(r.Height)
	return x, y
}
