package curveviz

const (
	// LabelTextOffset is how far a curve label sits above its anchor point.
	LabelTextOffset = 14.0

	// LabelHeight is the height of a curve label rect.
	LabelHeight = 12.0
)

// ClampSpan shifts the span [left, right] horizontally so it fits inside
// [0, width]. The span keeps its length. When it is longer than width the
// left edge wins and lands on 0.
func ClampSpan(left, right, width float64) (float64, float64) {
	if right > width {
		left -= right - width
		right = width
	}
	if left < 0 {
		right -= left
		left = 0
	}
	return left, right
}

// ValueRange is the time and value extent a curve label is placed against.
type ValueRange struct {
	MinTime, MaxTime   float64
	MinValue, MaxValue float64
}

// Rates returns the normalized position of (time, value) inside the range.
// Both rates are clamped to [0, 1]; a degenerate value range yields the
// midline.
func (r ValueRange) Rates(time, value float64) (timeRate, valRate float64) {
	return inverseLerp(r.MinTime, r.MaxTime, time), valueRate(r.MinValue, r.MaxValue, value)
}

// PlaceCurveLabel positions a label of labelWidth over the point (time,
// value) of a curve drawn into bounds. The label's bottom-left corner sits
// LabelTextOffset pixels above the point and the label is shifted to stay
// within [0, containerWidth].
func PlaceCurveLabel(bounds Rect, vr ValueRange, time, value, labelWidth, containerWidth float64) Rect {
	tr, yr := vr.Rates(time, value)
	x := bounds.X + bounds.Width*tr
	y := bounds.YMax() - bounds.Height*yr

	left, right := ClampSpan(x, x+labelWidth, containerWidth)
	return Rect{
		X:      left,
		Y:      y - LabelTextOffset,
		Width:  right - left,
		Height: LabelHeight,
	}
}

// PlaceLineLabel centers a label of labelWidth on a dope line's visible time
// range, shifted to stay within [0, containerWidth]. The label spans the
// line's full height.
func PlaceLineLabel(line Rect, labelWidth, containerWidth float64) Rect {
	center := line.Center().X
	left, right := ClampSpan(center-labelWidth/2, center+labelWidth/2, containerWidth)
	return Rect{
		X:      left,
		Y:      line.Y,
		Width:  right - left,
		Height: line.Height,
	}
}
