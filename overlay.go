package curveviz

import (
	"github.com/gogpu/curveviz/internal/cache"
)

// FrameStats summarizes the last Overlay.Draw call.
type FrameStats struct {
	// Lines is the number of dope lines that passed culling.
	Lines int
	// Labels is the number of labels drawn.
	Labels int
	// Vertices is the number of curve and band vertices emitted.
	Vertices int
}

// Overlay draws curve visualizations over a host's dope sheet or curve
// editor. It owns one drawer per dope line and per editor curve and drops
// them all when the host opens a different clip.
//
// An Overlay is not safe for concurrent use; call Draw from the host's
// repaint callback.
type Overlay struct {
	host   Host
	device Device
	prefs  Preferences

	clipID  string
	hasClip bool

	lines  *cache.Cache[string, *LineDrawer]
	labels *cache.Cache[string, *CurveLabelDrawer]

	last FrameStats
}

// NewOverlay creates an overlay for host.
func NewOverlay(host Host, opts ...OverlayOption) *Overlay {
	o := defaultOverlayOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Overlay{
		host:   host,
		device: o.device,
		prefs:  o.prefs,
		lines: cache.New(o.cacheLimit, func(_ string, d *LineDrawer) {
			d.Dispose()
		}),
		labels: cache.New(o.cacheLimit, func(_ string, d *CurveLabelDrawer) {
			d.Dispose()
		}),
	}
}

// Preferences returns the active preferences.
func (o *Overlay) Preferences() Preferences {
	return o.prefs
}

// SetPreferences replaces the preferences. Every drawer is rebuilt on the
// next Draw.
func (o *Overlay) SetPreferences(p Preferences) {
	o.prefs = p
	o.Reset()
}

// Reset disposes every cached drawer.
func (o *Overlay) Reset() {
	o.lines.Clear()
	o.labels.Clear()
}

// Close releases every resource held by the overlay.
func (o *Overlay) Close() {
	o.Reset()
	o.hasClip = false
	o.clipID = ""
}

// CachedLines returns the number of live dope line drawers.
func (o *Overlay) CachedLines() int {
	return o.lines.Len()
}

// CachedLabels returns the number of live curve label drawers.
func (o *Overlay) CachedLabels() int {
	return o.labels.Len()
}

// LastFrame returns statistics of the most recent Draw.
func (o *Overlay) LastFrame() FrameStats {
	return o.last
}

// Draw renders one frame into s. Labels are drawn through tr; a nil tr
// skips labels. Without an open clip Draw returns immediately and leaves
// every cache untouched.
func (o *Overlay) Draw(s Surface, tr TextRenderer) {
	clip := o.host.Clip()
	if clip == nil {
		return
	}

	if id := clip.ID(); !o.hasClip || id != o.clipID {
		if o.hasClip {
			Logger().Debug("curveviz: clip changed, dropping drawers",
				"from", o.clipID,
				"to", id,
				"lines", o.lines.Len(),
				"labels", o.labels.Len())
		}
		o.Reset()
		o.clipID = id
		o.hasClip = true
	}

	o.last = FrameStats{}
	if o.host.ShowCurveEditor() {
		o.drawCurveEditor(clip, tr)
	} else {
		o.drawDopeSheet(clip, s, tr)
	}
}

func (o *Overlay) drawDopeSheet(clip Clip, s Surface, tr TextRenderer) {
	sheet := o.host.DopeSheet()
	if sheet == nil {
		return
	}
	ctx := &LineContext{
		Surface: s,
		Text:    tr,
		Clip:    clip,
		Sheet:   sheet.Rect(),
		Prefs:   &o.prefs,
	}

	lines := sheet.Lines()
	// The first line summarizes the whole clip.
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for _, line := range lines {
		d := o.lineDrawer(clip, line)
		n, drawn := d.Draw(ctx, line)
		if !drawn {
			continue
		}
		o.last.Lines++
		o.last.Vertices += n
		if tr != nil && o.prefs.DopeSheetShowLabel && d.label != "" {
			o.last.Labels++
		}
	}
}

// lineDrawer returns the cached drawer for line, rebuilding it when the
// line's bindings changed.
func (o *Overlay) lineDrawer(clip Clip, line DopeLine) *LineDrawer {
	key := line.Key()
	bindings := line.Bindings()
	create := func() *LineDrawer {
		return NewLineDrawer(bindings, clip.FrameRate(), &o.prefs, o.device)
	}
	d := o.lines.GetOrCreate(key, create)
	if !d.matches(bindings) {
		o.lines.Delete(key)
		d = o.lines.GetOrCreate(key, create)
	}
	return d
}

func (o *Overlay) drawCurveEditor(clip Clip, tr TextRenderer) {
	if tr == nil || !o.prefs.CurvesShowLabel {
		return
	}
	editor := o.host.CurveEditor()
	if editor == nil {
		return
	}
	width := editor.Rect().Width
	now := o.host.CurrentTime()
	size := float64(o.prefs.LabelFontSize)

	for _, ec := range editor.Curves() {
		d := o.labels.GetOrCreate(ec.Key(), func() *CurveLabelDrawer {
			return NewCurveLabelDrawer(clip.FrameRate(), o.prefs.Resolution)
		})
		if d.Draw(tr, ec, now, width, size) {
			o.last.Labels++
		}
	}
}
