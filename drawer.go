package curveviz

import "slices"

// materialSlot acquires a material on first use and releases it once.
type materialSlot struct {
	device   Device
	material Material
}

func (m *materialSlot) acquire() Material {
	if m.material == nil && m.device != nil {
		m.material = m.device.NewMaterial()
	}
	return m.material
}

func (m *materialSlot) release() {
	if m.material != nil {
		m.material.Release()
		m.material = nil
	}
}

// CurveRect maps a curve's key range into the rect of a dope line spanning
// [lineMinTime, lineMaxTime].
func CurveRect(line Rect, lineMinTime, lineMaxTime, curveMinTime, curveMaxTime float64) Rect {
	minRate := inverseLerp(lineMinTime, lineMaxTime, curveMinTime)
	maxRate := inverseLerp(lineMinTime, lineMaxTime, curveMaxTime)
	return Rect{
		X:      line.X + line.Width*minRate,
		Y:      line.Y,
		Width:  line.Width * (maxRate - minRate),
		Height: line.Height,
	}
}

// CurveDrawer draws a single scalar curve as a heatmap-colored line strip.
type CurveDrawer struct {
	binding Binding
	heatmap *Heatmap
	sampler *CurveSampler
	slot    materialSlot
}

// NewCurveDrawer creates a drawer for one binding. dev may be nil, in which
// case geometry is emitted without a material.
func NewCurveDrawer(b Binding, hm *Heatmap, frameRate float64, resolution int, dev Device) *CurveDrawer {
	return &CurveDrawer{
		binding: b,
		heatmap: hm,
		sampler: NewCurveSampler(frameRate, resolution),
		slot:    materialSlot{device: dev},
	}
}

// Binding returns the drawn binding.
func (d *CurveDrawer) Binding() Binding {
	return d.binding
}

// Draw emits c positioned by its own key range inside a dope line covering
// [lineMinTime, lineMaxTime]. It returns the number of vertices emitted.
func (d *CurveDrawer) Draw(s Surface, c Curve, line Rect, viewportWidth, lineMinTime, lineMaxTime float64) int {
	sc, ok := d.sampler.Sample(c)
	if !ok {
		return 0
	}
	rect := CurveRect(line, lineMinTime, lineMaxTime, sc.MinTime, sc.MaxTime)
	return DrawCurveStrip(s, d.slot.acquire(), sc, rect, viewportWidth, d.heatmap)
}

// Dispose releases the sample buffers and the material.
func (d *CurveDrawer) Dispose() {
	d.sampler.Release()
	d.slot.release()
}

// GradientDrawer draws a color group as a horizontal color band.
type GradientDrawer struct {
	channels [4]Binding
	sampler  *ColorSampler
	slot     materialSlot
}

// NewGradientDrawer creates a drawer for the red, green, blue and alpha
// bindings of one color property.
func NewGradientDrawer(channels [4]Binding, frameRate float64, resolution int, dev Device) *GradientDrawer {
	return &GradientDrawer{
		channels: channels,
		sampler:  NewColorSampler(frameRate, resolution),
		slot:     materialSlot{device: dev},
	}
}

// Draw resolves the four channel curves from clip and emits the band along
// the bottom of line. Nothing is drawn when a channel is missing.
func (d *GradientDrawer) Draw(s Surface, clip Clip, line Rect, viewportWidth, bandHeight float64) int {
	var ch ColorChannels
	for i, b := range d.channels {
		ch[i] = clip.Curve(b)
		if ch[i] == nil {
			return 0
		}
	}
	sc, ok := d.sampler.Sample(ch)
	if !ok {
		return 0
	}
	return DrawGradientBand(s, d.slot.acquire(), sc, line, viewportWidth, bandHeight)
}

// Dispose releases the sample buffers and the material.
func (d *GradientDrawer) Dispose() {
	d.sampler.Release()
	d.slot.release()
}

// LineDrawer draws everything belonging to one dope line: the parent mask,
// the label and either a color band or one strip per curve.
type LineDrawer struct {
	bindings []Binding
	label    string
	gradient *GradientDrawer
	curves   []*CurveDrawer
	mask     materialSlot

	labelSize  float64
	labelWidth float64
}

// NewLineDrawer builds the drawers for a dope line's bindings. Four
// bindings ending in .r, .g, .b and .a become a gradient; anything else is
// drawn curve by curve.
func NewLineDrawer(bindings []Binding, frameRate float64, prefs *Preferences, dev Device) *LineDrawer {
	d := &LineDrawer{
		bindings: slices.Clone(bindings),
		label:    GroupLabel(bindings),
		mask:     materialSlot{device: dev},
	}

	if IsColorGroup(bindings) {
		d.gradient = NewGradientDrawer([4]Binding(bindings), frameRate, prefs.Resolution, dev)
		return d
	}
	if looksLikeColorGroup(bindings) {
		Logger().Warn("curveviz: color channels out of order, drawing curves",
			"label", d.label)
	}

	d.curves = make([]*CurveDrawer, len(bindings))
	for i, b := range bindings {
		d.curves[i] = NewCurveDrawer(b, prefs.HeatmapFor(b.Token()), frameRate, prefs.Resolution, dev)
	}
	return d
}

// looksLikeColorGroup reports four distinct r, g, b, a channels in any
// order.
func looksLikeColorGroup(bindings []Binding) bool {
	if len(bindings) != 4 {
		return false
	}
	seen := map[string]bool{}
	for _, b := range bindings {
		switch tok := b.Token(); tok {
		case "r", "g", "b", "a":
			seen[tok] = true
		default:
			return false
		}
	}
	return len(seen) == 4
}

// Label returns the line's label text.
func (d *LineDrawer) Label() string {
	return d.label
}

// IsGradient reports whether the line is drawn as a color band.
func (d *LineDrawer) IsGradient() bool {
	return d.gradient != nil
}

// matches reports whether the drawer was built for bindings.
func (d *LineDrawer) matches(bindings []Binding) bool {
	return slices.Equal(d.bindings, bindings)
}

// LineContext carries the per-frame inputs of LineDrawer.Draw.
type LineContext struct {
	Surface Surface
	Text    TextRenderer
	Clip    Clip
	// Sheet is the dope sheet rect; its width is the clip window.
	Sheet Rect
	Prefs *Preferences
}

// Draw draws line. It returns the number of vertices emitted and whether
// the line passed culling.
func (d *LineDrawer) Draw(ctx *LineContext, line DopeLine) (int, bool) {
	p := ctx.Prefs
	if !p.DopeSheetShowLabel && !p.DopeSheetShowCurve {
		return 0, false
	}

	rect := line.Rect()
	if rect.Width <= 0 || rect.YMax() < 0 || ctx.Sheet.Height < rect.YMax() {
		return 0, false
	}

	if line.HasChildren() {
		mask := Rect{X: 0, Y: rect.Y, Width: ctx.Sheet.Width, Height: rect.Height}
		FillRect(ctx.Surface, d.mask.acquire(), mask, p.ParentLineColor)
	}

	if p.DopeSheetShowLabel && ctx.Text != nil && d.label != "" {
		d.drawLabel(ctx, rect)
	}

	if !p.DopeSheetShowCurve {
		return 0, true
	}

	if d.gradient != nil {
		return d.gradient.Draw(ctx.Surface, ctx.Clip, rect, ctx.Sheet.Width, float64(p.ColorBandHeight)), true
	}

	minTime, maxTime := line.TimeRange()
	n := 0
	for _, cd := range d.curves {
		c := ctx.Clip.Curve(cd.binding)
		if c == nil {
			continue
		}
		n += cd.Draw(ctx.Surface, c, rect, ctx.Sheet.Width, minTime, maxTime)
	}
	return n, true
}

func (d *LineDrawer) drawLabel(ctx *LineContext, rect Rect) {
	size := float64(ctx.Prefs.LabelFontSize)
	if d.labelSize != size {
		d.labelWidth, _ = ctx.Text.MeasureText(d.label, size)
		d.labelSize = size
	}
	r := PlaceLineLabel(rect, d.labelWidth, ctx.Sheet.Width)
	ctx.Text.DrawText(r, d.label, size, ctx.Prefs.LabelColor, AlignCenter)
}

// Dispose releases every owned drawer and material.
func (d *LineDrawer) Dispose() {
	if d.gradient != nil {
		d.gradient.Dispose()
	}
	for _, cd := range d.curves {
		cd.Dispose()
	}
	d.mask.release()
}

// CurveLabelDrawer places a label over the playhead value of one curve in
// the curve editor.
type CurveLabelDrawer struct {
	sampler *CurveSampler
}

// NewCurveLabelDrawer creates a label drawer. The value range is sampled at
// frameRate times resolution.
func NewCurveLabelDrawer(frameRate float64, resolution int) *CurveLabelDrawer {
	return &CurveLabelDrawer{sampler: NewCurveSampler(frameRate, resolution)}
}

// Place returns the label rect for ec at time, or false when the curve has
// no keys.
func (d *CurveLabelDrawer) Place(ec EditorCurve, time, labelWidth, containerWidth float64) (Rect, bool) {
	c := ec.Curve()
	sc, ok := d.sampler.Sample(c)
	if !ok {
		return Rect{}, false
	}
	vr := ValueRange{
		MinTime:  sc.MinTime,
		MaxTime:  sc.MaxTime,
		MinValue: sc.MinValue,
		MaxValue: sc.MaxValue,
	}
	return PlaceCurveLabel(ec.Bounds(), vr, time, c.Evaluate(time), labelWidth, containerWidth), true
}

// Draw draws the label of ec at time in the curve's color at half opacity.
func (d *CurveLabelDrawer) Draw(tr TextRenderer, ec EditorCurve, time, containerWidth, fontSize float64) bool {
	text := ec.Binding().String()
	w, _ := tr.MeasureText(text, fontSize)
	r, ok := d.Place(ec, time, w, containerWidth)
	if !ok {
		return false
	}
	tr.DrawText(r, text, fontSize, ec.Color().WithAlpha(0.5), AlignLeft)
	return true
}

// Dispose drops the cached value range.
func (d *CurveLabelDrawer) Dispose() {
	d.sampler.Release()
}
