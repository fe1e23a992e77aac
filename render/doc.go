// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render provides Surface, Device and TextRenderer implementations
// for the curveviz overlay.
//
// The overlay emits immediate-mode geometry; this package decides where it
// goes:
//
//   - Mesh: records batches and packs them into GPU vertex buffers
//     (position + color, premultiplied) for a host that owns the device
//   - Canvas: rasterizes into an *image.RGBA with golang.org/x/image/vector
//     and draws labels with the text package
//   - Cells: a character grid for terminal previews, styled with lipgloss
//
// # Usage
//
//	canvas := render.NewCanvas(800, 400)
//	ov := curveviz.NewOverlay(host, curveviz.WithDevice(canvas))
//	ov.Draw(canvas, canvas)
//	_ = canvas.SavePNG("overlay.png")
package render
