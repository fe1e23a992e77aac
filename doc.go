// Package curveviz draws animation curves as an overlay on a timeline editor.
//
// # Overview
//
// curveviz turns sparse, keyed animation curves into screen-space geometry:
// each curve is sampled at the clip's frame rate, clipped to the visible
// viewport, color-mapped through a heatmap and emitted as a line strip.
// Four curves forming a color property (.r, .g, .b, .a) become a single
// blended color band. Labels follow the playhead in the curve editor and
// name each dope line in the dope sheet.
//
// # Quick Start
//
//	import "github.com/gogpu/curveviz"
//
//	ov := curveviz.NewOverlay(host,
//		curveviz.WithPreferences(curveviz.DefaultPreferences()))
//	defer ov.Close()
//
//	// Once per repaint
//	ov.Draw(surface, textRenderer)
//
// # Architecture
//
// The package is organized leaves first:
//   - Curve, KeyframeCurve and Fingerprint: curve data and content hashes
//   - CurveSampler and ColorSampler: cached left/right sample arrays
//   - ClipSamples: visible sample range against [0, viewportWidth]
//   - DrawCurveStrip and DrawGradientBand: vertex emission into a Surface
//   - PlaceCurveLabel and PlaceLineLabel: label rects
//   - Overlay: per-line drawer registry driven by a Host
//
// Sub-packages provide a recording mesh, a software canvas and a terminal
// surface (render), an HJSON clip format with a Host implementation
// (timeline), and font loading and shaping (text).
//
// # Coordinate System
//
// Pixel coordinates with the origin at the top-left of the drawing area:
//   - X increases right
//   - Y increases down, so larger values are drawn toward the rect's top
//
// # Caching
//
// Samples are recomputed only when a curve's fingerprint changes. Curves
// implementing Fingerprinter supply their own; others are hashed from their
// keys on every draw.
//
// # Logging
//
// curveviz is silent by default. Call SetLogger to receive debug records on
// cache rebuilds and warnings on fallbacks.
package curveviz
