package curveviz

// Host is the editor the overlay draws into. It exposes only the read
// accessors the overlay needs; every method is called from the draw
// goroutine.
type Host interface {
	// Clip returns the clip being edited, or nil when none is open.
	Clip() Clip
	// ShowCurveEditor reports whether the curve editor is visible instead
	// of the dope sheet.
	ShowCurveEditor() bool
	// CurrentTime returns the playhead time in seconds.
	CurrentTime() float64
	DopeSheet() DopeSheet
	CurveEditor() CurveEditor
}

// Clip is an animation clip. ID identifies the clip across frames; a
// different ID means a different clip was opened.
type Clip interface {
	ID() string
	FrameRate() float64
	// Curve returns the curve bound to b, or nil when the binding is gone.
	Curve(b Binding) Curve
}

// DopeSheet is the dope sheet view of the host.
type DopeSheet interface {
	// Rect is the drawing area in overlay-local pixels. Only its width and
	// height are used for clipping.
	Rect() Rect
	// Lines returns the dope lines from top to bottom. The first line is
	// the clip's summary line and is never drawn.
	Lines() []DopeLine
}

// DopeLine is one row of the dope sheet.
type DopeLine interface {
	// Key identifies the line across frames.
	Key() string
	Bindings() []Binding
	HasChildren() bool
	// Rect spans the line's first to last key, already scrolled.
	Rect() Rect
	// TimeRange returns the times of the line's first and last keys.
	TimeRange() (minTime, maxTime float64)
}

// CurveEditor is the curve editor view of the host.
type CurveEditor interface {
	Rect() Rect
	Curves() []EditorCurve
}

// EditorCurve is one curve shown in the curve editor.
type EditorCurve interface {
	Key() string
	Binding() Binding
	Curve() Curve
	// Bounds is the curve's key-range rectangle in overlay-local pixels.
	Bounds() Rect
	Color() RGBA
}

// Align selects horizontal text alignment inside a label rect.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextRenderer measures and draws label text.
type TextRenderer interface {
	MeasureText(text string, size float64) (width, height float64)
	DrawText(r Rect, text string, size float64, c RGBA, align Align)
}
