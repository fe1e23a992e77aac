package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/gogpu/curveviz"
	"github.com/gogpu/curveviz/render"
	"github.com/gogpu/curveviz/text"
	"github.com/gogpu/curveviz/timeline"
)

// renderMargin is the horizontal gap kept around a fitted clip.
const renderMargin = 24

var renderBackground = curveviz.Hex("#282828")

func runRender(args []string) error {
	var c common
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	c.register(fs)
	var (
		out     = fs.String("out", "curves.png", "output PNG file")
		width   = fs.Int("width", 800, "image width")
		height  = fs.Int("height", 0, "image height (0 fits every dope line)")
		pps     = fs.Float64("pps", 0, "pixels per second (0 fits the clip to the width)")
		scroll  = fs.Float64("scroll", 0, "extra horizontal scroll in pixels")
		at      = fs.Float64("time", 0, "playhead time in seconds")
		curves  = fs.Bool("curves", false, "draw the curve editor instead of the dope sheet")
		font    = fs.String("font", "", "TTF/OTF file for labels (default Go Regular)")
		lineW   = fs.Float64("linewidth", 1, "curve line width in pixels")
		lineHgt = fs.Float64("lineheight", timeline.DefaultLineHeight, "dope line height in pixels")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	clip, prefs, err := c.load()
	if err != nil {
		return err
	}

	view := timeline.NewView(clip, float64(*width), float64(*height))
	view.Expanded = c.expand
	view.ShowCurves = *curves
	view.Time = *at
	view.LineHeight = *lineHgt
	if *pps > 0 {
		view.PixelsPerSecond = *pps
		start, _ := clip.Duration()
		view.ScrollX = start*view.PixelsPerSecond - renderMargin
	} else {
		view.Fit(renderMargin)
	}
	view.ScrollX += *scroll
	if *height <= 0 {
		view.Height = math.Max(view.LineHeight, float64(len(view.Lines()))*view.LineHeight)
		if *curves {
			view.Height = float64(*width) / 2
		}
	}

	opts := []render.CanvasOption{
		render.WithBackground(renderBackground),
		render.WithLineWidth(*lineW),
	}
	if *font != "" {
		src, err := text.NewFontSourceFromFile(*font)
		if err != nil {
			return err
		}
		defer src.Close()
		opts = append(opts, render.WithFontSource(src))
	}
	canvas := render.NewCanvas(*width, int(math.Ceil(view.Height)), opts...)

	ov := curveviz.NewOverlay(view,
		curveviz.WithDevice(canvas),
		curveviz.WithPreferences(prefs))
	defer ov.Close()

	if view.ShowCurves {
		painter := newCurvePainter()
		defer painter.Dispose()
		painter.Draw(canvas, canvas, view, prefs.Resolution)
	}
	ov.Draw(canvas, canvas)
	drawPlayhead(canvas, canvas, view)

	if err := canvas.SavePNG(*out); err != nil {
		return err
	}
	stats := ov.LastFrame()
	fmt.Fprintf(os.Stdout, "%s: %d lines, %d labels, %d vertices -> %s (%dx%d)\n",
		clip.Name(), stats.Lines, stats.Labels, stats.Vertices, *out, canvas.Width(), canvas.Height())
	return nil
}
