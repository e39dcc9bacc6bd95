/*
Command starpath runs the star scene headless: it clicks a curve onto the
canvas from a script, animates the scene for a number of frames and writes
the last frame as a PNG image.

	starpath -out stars.png -frames 240 -fps 60 -size 600 -follow

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"
	"github.com/hako/durafmt"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starpath"
	"github.com/npillmayer/starpath/render"
	"github.com/npillmayer/starpath/scene"
)

var errUsage = errors.New("invalid arguments")

type options struct {
	out     string
	frames  int
	fps     float64
	size    int
	clicks  int
	follow  bool
	outline bool
	verbose bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.out, "out", "starpath.png", "output PNG file")
	flag.IntVar(&opts.frames, "frames", 240, "number of frames to animate")
	flag.Float64Var(&opts.fps, "fps", 60, "frames per second")
	flag.IntVar(&opts.size, "size", 600, "canvas width and height in pixels")
	flag.IntVar(&opts.clicks, "clicks", 7, "number of scripted clicks")
	flag.BoolVar(&opts.follow, "follow", false, "camera follows the star on the curve")
	flag.BoolVar(&opts.outline, "outline", false, "stroke the silhouette of every star")
	flag.BoolVar(&opts.verbose, "v", false, "verbose tracing")
	flag.Parse()

	if opts.verbose {
		for _, key := range []string{"catmull", "motion", "polygon", "scene", "render"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "starpath: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.frames <= 0 || opts.fps <= 0 || opts.size <= 0 || opts.clicks < 0 {
		return fmt.Errorf("%w: frames, fps and size must be positive", errUsage)
	}
	s := scene.New(scene.DefaultConfig())
	s.SetFollow(opts.follow)
	script := clickScript(opts.clicks)
	dt := 1 / opts.fps
	for f := 0; f < opts.frames; f++ {
		t := float64(f) * dt
		for len(script) > 0 && script[0].at <= t {
			s.Click(script[0].ndc, script[0].at)
			script = script[1:]
		}
		s.Tick(t)
	}
	file, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	r := render.New(opts.size, opts.size)
	r.Outlines = opts.outline
	if err = r.WritePNG(file, s); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", opts.out, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", opts.out, err)
	}
	simulated := time.Duration(float64(opts.frames) * dt * float64(time.Second))
	fmt.Printf("%s frames (%s simulated), %d knots, %s curve vertices, on target: %s -> %s\n",
		humanize.Comma(int64(opts.frames)),
		durafmt.Parse(simulated).LimitFirstN(2),
		s.Curve().VertexCount(),
		humanize.Comma(int64(len(r.Strip()))),
		onTarget(s),
		opts.out)
	return nil
}

// onTarget names the topmost star covering the published target.
func onTarget(s *scene.Scene) string {
	if sp, ok := s.HitTest(s.Target()); ok {
		return sp.Name
	}
	return "none"
}

type click struct {
	ndc starpath.Pair
	at  float64 // seconds
}

// clickScript places n clicks on a circle around the center of the canvas,
// one every 0.4 seconds.
func clickScript(n int) []click {
	script := make([]click, n)
	for i := range script {
		phi := 2 * math.Pi * float64(i) / float64(n)
		script[i] = click{
			ndc: starpath.P(0.6*math.Cos(phi), 0.5*math.Sin(phi)),
			at:  0.1 + 0.4*float64(i),
		}
	}
	return script
}
