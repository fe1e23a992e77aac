package text

import "golang.org/x/image/math/fixed"

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Baseline returns the baseline offset that vertically centers a line of
// text inside a box of the given height.
func (m Metrics) Baseline(boxHeight float64) float64 {
	return (boxHeight-(m.Ascent+m.Descent))/2 + m.Ascent
}

// fixedToFloat64 converts a 26.6 fixed-point value to float64.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a float64 to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
