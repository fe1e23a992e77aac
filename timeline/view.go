package timeline

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/curveviz"
)

const (
	// DefaultPixelsPerSecond is the initial horizontal zoom.
	DefaultPixelsPerSecond = 200.0

	// DefaultLineHeight is the height of a dope line in pixels.
	DefaultLineHeight = 20.0

	// MinPixelsPerSecond bounds zooming out.
	MinPixelsPerSecond = 1.0

	// editorMargin is the share of the value range left empty above and
	// below the curves in the curve editor.
	editorMargin = 0.1
)

// SummaryKey is the key of the first dope line, which spans the whole clip.
const SummaryKey = "summary"

// View lays out a clip the way an animation editor does. It implements
// curveviz.Host. Exported fields may be changed between frames.
//
// View is not safe for concurrent use.
type View struct {
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// PixelsPerSecond is the horizontal zoom.
	PixelsPerSecond float64
	// ScrollX and ScrollY are the viewport offsets in pixels.
	ScrollX, ScrollY float64
	// LineHeight is the height of every dope line.
	LineHeight float64
	// Expanded shows one child line per track under each grouped line.
	Expanded bool
	// ShowCurves selects the curve editor instead of the dope sheet.
	ShowCurves bool
	// Time is the playhead in seconds.
	Time float64

	clip   *Clip
	ranges map[curveviz.Binding]valueSpan
}

// valueSpan is the sampled value range of one curve.
type valueSpan struct {
	hash     uint64
	min, max float64
}

// NewView creates a view of clip with default zoom and line height.
func NewView(clip *Clip, width, height float64) *View {
	return &View{
		Width:           width,
		Height:          height,
		PixelsPerSecond: DefaultPixelsPerSecond,
		LineHeight:      DefaultLineHeight,
		clip:            clip,
		ranges:          make(map[curveviz.Binding]valueSpan),
	}
}

// SetClip replaces the viewed clip. nil closes it.
func (v *View) SetClip(c *Clip) {
	v.clip = c
	clear(v.ranges)
}

// Clip implements curveviz.Host.
func (v *View) Clip() curveviz.Clip {
	if v.clip == nil {
		return nil
	}
	return v.clip
}

// ShowCurveEditor implements curveviz.Host.
func (v *View) ShowCurveEditor() bool {
	return v.ShowCurves
}

// CurrentTime implements curveviz.Host.
func (v *View) CurrentTime() float64 {
	return v.Time
}

// TimeToX maps a time to a viewport x coordinate.
func (v *View) TimeToX(t float64) float64 {
	return t*v.PixelsPerSecond - v.ScrollX
}

// XToTime maps a viewport x coordinate to a time.
func (v *View) XToTime(x float64) float64 {
	return (x + v.ScrollX) / v.PixelsPerSecond
}

// Zoom scales the horizontal zoom by factor, keeping the time under
// anchorX in place.
func (v *View) Zoom(factor, anchorX float64) {
	if !(factor > 0) {
		return
	}
	t := v.XToTime(anchorX)
	v.PixelsPerSecond = math.Max(MinPixelsPerSecond, v.PixelsPerSecond*factor)
	v.ScrollX = t*v.PixelsPerSecond - anchorX
}

// Fit zooms and scrolls so the whole clip fills the viewport width with a
// margin of margin pixels on each side.
func (v *View) Fit(margin float64) {
	if v.clip == nil {
		return
	}
	start, end := v.clip.Duration()
	usable := v.Width - 2*margin
	if end <= start || usable <= 0 {
		v.ScrollX = start*v.PixelsPerSecond - margin
		return
	}
	v.PixelsPerSecond = math.Max(MinPixelsPerSecond, usable/(end-start))
	v.ScrollX = start*v.PixelsPerSecond - margin
}

// Line is one laid-out dope line. It implements curveviz.DopeLine.
type Line struct {
	key              string
	label            string
	bindings         []curveviz.Binding
	hasChildren      bool
	rect             curveviz.Rect
	minTime, maxTime float64
}

func (l *Line) Key() string                           { return l.key }
func (l *Line) Bindings() []curveviz.Binding          { return l.bindings }
func (l *Line) HasChildren() bool                     { return l.hasChildren }
func (l *Line) Rect() curveviz.Rect                   { return l.rect }
func (l *Line) TimeRange() (minTime, maxTime float64) { return l.minTime, l.maxTime }

// Label returns the row header an editor would show for the line.
func (l *Line) Label() string { return l.label }

// Lines lays out the dope sheet from top to bottom. The first line is the
// summary of the whole clip. Tracks sharing an object and a property base
// are grouped under one parent line.
func (v *View) Lines() []*Line {
	if v.clip == nil {
		return nil
	}
	var lines []*Line
	add := func(key, label string, bindings []curveviz.Binding, hasChildren bool) {
		start, end := timeRange(v.clip, bindings)
		row := float64(len(lines))
		lines = append(lines, &Line{
			key:         key,
			label:       label,
			bindings:    bindings,
			hasChildren: hasChildren,
			rect: curveviz.R(
				v.TimeToX(start),
				row*v.LineHeight-v.ScrollY,
				(end-start)*v.PixelsPerSecond,
				v.LineHeight),
			minTime: start,
			maxTime: end,
		})
	}

	add(SummaryKey, v.clip.Name(), v.clip.Bindings(), len(v.clip.Tracks()) > 0)
	for _, g := range v.clip.groups() {
		if len(g.bindings) == 1 {
			b := g.bindings[0]
			add(b.String(), b.String(), g.bindings, false)
			continue
		}
		parent := curveviz.Binding{Path: g.path, Property: g.base}
		add(parent.String()+"/", parent.String(), g.bindings, true)
		if v.Expanded {
			for _, b := range g.bindings {
				add(b.String(), b.Property, []curveviz.Binding{b}, false)
			}
		}
	}
	return lines
}

// DopeSheet implements curveviz.Host.
func (v *View) DopeSheet() curveviz.DopeSheet {
	return dopeSheet{v}
}

type dopeSheet struct{ v *View }

func (d dopeSheet) Rect() curveviz.Rect {
	return curveviz.R(0, 0, d.v.Width, d.v.Height)
}

func (d dopeSheet) Lines() []curveviz.DopeLine {
	lines := d.v.Lines()
	out := make([]curveviz.DopeLine, len(lines))
	for i, l := range lines {
		out[i] = l
	}
	return out
}

// EditorCurve is one curve laid out in the curve editor. It implements
// curveviz.EditorCurve.
type EditorCurve struct {
	binding curveviz.Binding
	curve   curveviz.Curve
	bounds  curveviz.Rect
	color   curveviz.RGBA
}

func (e *EditorCurve) Key() string               { return e.binding.String() }
func (e *EditorCurve) Binding() curveviz.Binding { return e.binding }
func (e *EditorCurve) Curve() curveviz.Curve     { return e.curve }
func (e *EditorCurve) Bounds() curveviz.Rect     { return e.bounds }
func (e *EditorCurve) Color() curveviz.RGBA      { return e.color }

// EditorCurves lays out every track in the curve editor. All curves share
// one vertical scale fitted to their combined value range.
func (v *View) EditorCurves() []*EditorCurve {
	if v.clip == nil {
		return nil
	}
	tracks := v.clip.Tracks()
	spans := make([]valueSpan, len(tracks))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, t := range tracks {
		spans[i] = v.valueSpan(t)
		lo = math.Min(lo, spans[i].min)
		hi = math.Max(hi, spans[i].max)
	}
	if hi-lo < 1e-9 {
		lo, hi = lo-1, hi+1
	}
	pad := (hi - lo) * editorMargin
	lo, hi = lo-pad, hi+pad

	valueToY := func(value float64) float64 {
		return v.Height - (value-lo)/(hi-lo)*v.Height
	}

	out := make([]*EditorCurve, len(tracks))
	for i, t := range tracks {
		keys := t.Curve.Keys()
		start, end := keys[0].Time, keys[len(keys)-1].Time
		top := valueToY(spans[i].max)
		out[i] = &EditorCurve{
			binding: t.Binding,
			curve:   t.Curve,
			bounds: curveviz.R(
				v.TimeToX(start), top,
				(end-start)*v.PixelsPerSecond, valueToY(spans[i].min)-top),
			color: curveColor(t.Binding, i),
		}
	}
	return out
}

// valueSpan returns the sampled value range of t, cached by fingerprint.
func (v *View) valueSpan(t Track) valueSpan {
	hash := t.Curve.Fingerprint()
	if s, ok := v.ranges[t.Binding]; ok && s.hash == hash {
		return s
	}
	var sc curveviz.SampledCurve
	s := valueSpan{hash: hash}
	if curveviz.SampleCurve(&sc, t.Curve, v.clip.FrameRate(), 1) {
		s.min, s.max = sc.MinValue, sc.MaxValue
	}
	v.ranges[t.Binding] = s
	return s
}

// CurveEditor implements curveviz.Host.
func (v *View) CurveEditor() curveviz.CurveEditor {
	return curveEditor{v}
}

type curveEditor struct{ v *View }

func (c curveEditor) Rect() curveviz.Rect {
	return curveviz.R(0, 0, c.v.Width, c.v.Height)
}

func (c curveEditor) Curves() []curveviz.EditorCurve {
	curves := c.v.EditorCurves()
	out := make([]curveviz.EditorCurve, len(curves))
	for i, ec := range curves {
		out[i] = ec
	}
	return out
}

// curveColor picks the editor color of a curve: the axis color for x/y/z
// and r/g/b channels, a golden-angle hue otherwise.
func curveColor(b curveviz.Binding, i int) curveviz.RGBA {
	switch b.Token() {
	case "x", "r":
		return curveviz.RGB(1, 0.3, 0.3)
	case "y", "g":
		return curveviz.RGB(0.3, 1, 0.3)
	case "z", "b":
		return curveviz.RGB(0.3, 0.5, 1)
	case "w", "a":
		return curveviz.RGB(0.8, 0.8, 0.8)
	}
	c := colorful.Hsv(math.Mod(float64(i)*137.508, 360), 0.6, 1)
	return curveviz.RGB(c.R, c.G, c.B)
}
