package timeline

import (
	"math"
	"testing"

	"github.com/gogpu/curveviz"
)

func TestViewNoClip(t *testing.T) {
	v := NewView(nil, 100, 100)
	if v.Clip() != nil {
		t.Error("Clip() should be a nil interface without a clip")
	}
	if v.Lines() != nil || v.EditorCurves() != nil {
		t.Error("empty view should lay out nothing")
	}
}

func TestViewLines(t *testing.T) {
	v := NewView(mustParse(t, walkClip), 800, 200)
	v.PixelsPerSecond = 100
	v.ScrollX = 10

	lines := v.Lines()
	// summary, Hips : m_LocalPosition, m_Color
	if len(lines) != 3 {
		t.Fatalf("len(Lines()) = %d, want 3", len(lines))
	}
	if lines[0].Key() != SummaryKey || len(lines[0].Bindings()) != 6 {
		t.Errorf("summary line = %q with %d bindings", lines[0].Key(), len(lines[0].Bindings()))
	}

	pos := lines[1]
	if !pos.HasChildren() || len(pos.Bindings()) != 2 {
		t.Errorf("position line: children=%v bindings=%d", pos.HasChildren(), len(pos.Bindings()))
	}
	if got := pos.Label(); got != "Hips : m_LocalPosition" {
		t.Errorf("Label() = %q", got)
	}
	minTime, maxTime := pos.TimeRange()
	if minTime != 0 || maxTime != 1 {
		t.Errorf("TimeRange() = (%v, %v), want (0, 1)", minTime, maxTime)
	}
	want := curveviz.R(-10, 20, 100, 20)
	if pos.Rect() != want {
		t.Errorf("Rect() = %+v, want %+v", pos.Rect(), want)
	}

	if !curveviz.IsColorGroup(lines[2].Bindings()) {
		t.Errorf("m_Color line should hold a color group: %v", lines[2].Bindings())
	}
}

func TestViewExpanded(t *testing.T) {
	v := NewView(mustParse(t, walkClip), 800, 200)
	v.Expanded = true
	v.ScrollY = 5

	lines := v.Lines()
	// summary + (parent + 2) + (parent + 4)
	if len(lines) != 9 {
		t.Fatalf("len(Lines()) = %d, want 9", len(lines))
	}
	child := lines[2]
	if child.HasChildren() || len(child.Bindings()) != 1 {
		t.Errorf("child line: children=%v bindings=%d", child.HasChildren(), len(child.Bindings()))
	}
	if got := child.Rect().Y; got != 2*DefaultLineHeight-5 {
		t.Errorf("child Y = %v, want %v", got, 2*DefaultLineHeight-5)
	}

	seen := make(map[string]bool)
	for _, l := range lines {
		if seen[l.Key()] {
			t.Errorf("duplicate line key %q", l.Key())
		}
		seen[l.Key()] = true
	}
}

func TestViewZoom(t *testing.T) {
	v := NewView(nil, 400, 100)
	before := v.XToTime(120)
	v.Zoom(2, 120)
	if got := v.XToTime(120); math.Abs(got-before) > 1e-9 {
		t.Errorf("time under anchor moved: %v -> %v", before, got)
	}
	if v.PixelsPerSecond != 2*DefaultPixelsPerSecond {
		t.Errorf("PixelsPerSecond = %v", v.PixelsPerSecond)
	}

	v.Zoom(1e-9, 0)
	if v.PixelsPerSecond != MinPixelsPerSecond {
		t.Errorf("PixelsPerSecond = %v, want %v", v.PixelsPerSecond, MinPixelsPerSecond)
	}
}

func TestViewFit(t *testing.T) {
	v := NewView(mustParse(t, walkClip), 420, 100)
	v.Fit(10)
	if got := v.TimeToX(0); math.Abs(got-10) > 1e-9 {
		t.Errorf("TimeToX(start) = %v, want 10", got)
	}
	if got := v.TimeToX(2); math.Abs(got-410) > 1e-9 {
		t.Errorf("TimeToX(end) = %v, want 410", got)
	}
}

func TestViewEditorCurves(t *testing.T) {
	v := NewView(mustParse(t, walkClip), 400, 100)
	curves := v.EditorCurves()
	if len(curves) != 6 {
		t.Fatalf("len(EditorCurves()) = %d, want 6", len(curves))
	}

	for _, ec := range curves {
		b := ec.Bounds()
		if b.Y < 0 || b.YMax() > v.Height {
			t.Errorf("%s bounds %+v outside the editor", ec.Key(), b)
		}
	}

	// x spans [0, 2], y spans [1, 3]; y sits higher on screen.
	x, y := curves[0], curves[1]
	if !(y.Bounds().Y < x.Bounds().Y) {
		t.Errorf("y top %v should be above x top %v", y.Bounds().Y, x.Bounds().Y)
	}
	if x.Color() == y.Color() {
		t.Error("x and y curves should differ in color")
	}

	// Cached spans survive a second layout.
	again := v.EditorCurves()
	if again[0].Bounds() != x.Bounds() {
		t.Error("layout changed between frames")
	}
}

func TestViewImplementsHost(t *testing.T) {
	var h curveviz.Host = NewView(mustParse(t, walkClip), 300, 120)
	if h.Clip() == nil {
		t.Fatal("Clip() = nil")
	}
	if len(h.DopeSheet().Lines()) != 3 {
		t.Errorf("DopeSheet().Lines() = %d lines, want 3", len(h.DopeSheet().Lines()))
	}
	if len(h.CurveEditor().Curves()) != 6 {
		t.Errorf("CurveEditor().Curves() = %d, want 6", len(h.CurveEditor().Curves()))
	}
	if r := h.DopeSheet().Rect(); r.Width != 300 || r.Height != 120 {
		t.Errorf("DopeSheet().Rect() = %+v", r)
	}
}

func TestViewDrivesOverlay(t *testing.T) {
	v := NewView(mustParse(t, walkClip), 400, 100)
	v.Fit(0)
	ov := curveviz.NewOverlay(v)
	defer ov.Close()

	var s countingSurface
	ov.Draw(&s, nil)
	if s.vertices == 0 {
		t.Fatal("overlay drew nothing")
	}
	if ov.CachedLines() != 2 {
		t.Errorf("CachedLines() = %d, want 2", ov.CachedLines())
	}

	v.SetClip(mustParse(t, walkClip))
	ov.Draw(&s, nil)
	if ov.CachedLines() != 2 {
		t.Errorf("CachedLines() after reload = %d, want 2", ov.CachedLines())
	}
}

type countingSurface struct {
	vertices int
}

func (s *countingSurface) Begin(curveviz.Primitive, curveviz.Material) {}
func (s *countingSurface) Color(curveviz.RGBA)                         {}
func (s *countingSurface) Vertex(float64, float64)                     { s.vertices++ }
func (s *countingSurface) End()                                        {}
