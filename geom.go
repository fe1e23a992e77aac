package curveviz

import "math"

// Point represents a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in pixel space. Y grows downwards, so
// YMin is the top edge and YMax the bottom edge.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// XMin returns the left edge.
func (r Rect) XMin() float64 { return r.X }

// XMax returns the right edge.
func (r Rect) XMax() float64 { return r.X + r.Width }

// YMin returns the top edge.
func (r Rect) YMin() float64 { return r.Y }

// YMax returns the bottom edge.
func (r Rect) YMax() float64 { return r.Y + r.Height }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// lerp interpolates between a and b without clamping t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// inverseLerp returns where v lies between a and b, clamped to [0, 1].
// A degenerate range yields 0.
func inverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return clamp01((v - a) / (b - a))
}

// valueRate is inverseLerp for value ranges: a degenerate range maps to the
// midline.
func valueRate(minValue, maxValue, v float64) float64 {
	if minValue == maxValue {
		return 0.5
	}
	return clamp01((v - minValue) / (maxValue - minValue))
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// approximately compares two floats with a tolerance relative to their
// magnitude.
func approximately(a, b float64) bool {
	tol := 1e-6 * math.Max(math.Abs(a), math.Abs(b))
	if tol < 1e-9 {
		tol = 1e-9
	}
	return math.Abs(a-b) <= tol
}
