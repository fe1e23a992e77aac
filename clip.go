package curveviz

import "math"

// VisibleRange describes which of N+1 samples spread uniformly over a rect
// fall inside the horizontal clip window [0, viewportWidth].
type VisibleRange struct {
	// Begin is the first sample index at or after the left clip edge.
	Begin int
	// End is the last sample index at or before the right clip edge.
	End int
	// N is the number of sample intervals (samples - 1).
	N int
	// XMin and XMax are the rect's edges clamped to the clip window.
	XMin, XMax float64
}

// Empty reports whether no sample is visible.
func (r VisibleRange) Empty() bool {
	return r.Begin > r.End
}

// LeadingEdge reports whether a vertex must be synthesized at XMin.
func (r VisibleRange) LeadingEdge() bool {
	return !r.Empty() && r.Begin >= 1
}

// TrailingEdge reports whether a vertex must be synthesized at XMax.
func (r VisibleRange) TrailingEdge() bool {
	return !r.Empty() && r.End < r.N
}

// ClipSamples computes the visible sample range for n+1 samples spread over
// rect's width against the clip window [0, viewportWidth].
//
// With x(i) = rect.X + rect.Width*i/n, Begin is the smallest i with
// x(i) >= 0 and End the largest i with x(i) <= viewportWidth.
func ClipSamples(n int, rect Rect, viewportWidth float64) VisibleRange {
	r := VisibleRange{
		N:    n,
		XMin: math.Max(0, rect.XMin()),
		XMax: math.Min(viewportWidth, rect.XMax()),
	}

	if n <= 0 || rect.Width <= 0 {
		// Every sample sits at rect.X.
		r.N = 0
		if rect.X >= 0 && rect.X <= viewportWidth {
			r.Begin, r.End = 0, 0
		} else {
			r.Begin, r.End = 1, 0
		}
		return r
	}

	fn := float64(n)
	begin := math.Ceil(fn * -rect.X / rect.Width)
	end := math.Floor(fn * (viewportWidth - rect.X) / rect.Width)

	r.Begin = int(math.Max(0, math.Min(begin, fn+1)))
	r.End = int(math.Min(fn, math.Max(end, -1)))
	return r
}

// SampleX returns the x coordinate of sample i out of n intervals.
func SampleX(rect Rect, i, n int) float64 {
	if n <= 0 {
		return rect.X
	}
	return rect.X + rect.Width*float64(i)/float64(n)
}

// leadingEdgeRate returns where r.XMin lies between samples Begin-1 and Begin.
func (r VisibleRange) leadingEdgeRate(rect Rect) float64 {
	prevX := SampleX(rect, r.Begin-1, r.N)
	beginX := SampleX(rect, r.Begin, r.N)
	return inverseLerp(prevX, beginX, r.XMin)
}

// trailingEdgeRate returns where r.XMax lies between samples End and End+1.
func (r VisibleRange) trailingEdgeRate(rect Rect) float64 {
	endX := SampleX(rect, r.End, r.N)
	nextX := SampleX(rect, r.End+1, r.N)
	return inverseLerp(endX, nextX, r.XMax)
}
