// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/curveviz"
	"github.com/gogpu/curveviz/text"
)

// CanvasOption configures a Canvas.
type CanvasOption func(*canvasOptions)

// canvasOptions holds configuration for Canvas.
type canvasOptions struct {
	source     *text.FontSource
	lineWidth  float64
	background curveviz.RGBA
}

// defaultCanvasOptions returns the default canvas configuration.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		lineWidth:  1,
		background: curveviz.Transparent,
	}
}

// WithFontSource sets the font used for labels. The default is the Go
// Regular font.
func WithFontSource(src *text.FontSource) CanvasOption {
	return func(o *canvasOptions) {
		o.source = src
	}
}

// WithLineWidth sets the width of line strips in pixels.
func WithLineWidth(w float64) CanvasOption {
	return func(o *canvasOptions) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c curveviz.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}
