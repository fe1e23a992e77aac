package timeline

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/curveviz"
)

const walkClip = `
# Two position channels and a color group.
{
  name: Walk
  frameRate: 30
  tracks: [
    {
      path: Hips
      property: m_LocalPosition.x
      keys: [
        { time: 0, value: 0 }
        { time: 1, value: 2 }
      ]
    }
    {
      path: Hips
      property: m_LocalPosition.y
      keys: [
        { time: 0, value: 1, step: true }
        { time: 0.5, value: 3 }
      ]
    }
    {
      property: m_Color.r
      keys: [{ time: 0, value: 1 }, { time: 2, value: 0, inTangent: 0 }]
    }
    { property: "m_Color.g", keys: [{ time: 0, value: 0 }] }
    { property: "m_Color.b", keys: [{ time: 0, value: 0 }] }
    { property: "m_Color.a", keys: [{ time: 0, value: 1 }] }
  ]
}
`

func mustParse(t *testing.T, src string) *Clip {
	t.Helper()
	c, err := ParseClip([]byte(src))
	if err != nil {
		t.Fatalf("ParseClip: %v", err)
	}
	return c
}

func TestParseClip(t *testing.T) {
	c := mustParse(t, walkClip)

	if c.Name() != "Walk" || c.FrameRate() != 30 {
		t.Errorf("Name/FrameRate = %q/%v, want Walk/30", c.Name(), c.FrameRate())
	}
	if len(c.Tracks()) != 6 {
		t.Fatalf("len(Tracks()) = %d, want 6", len(c.Tracks()))
	}

	x := c.Curve(curveviz.Binding{Path: "Hips", Property: "m_LocalPosition.x"})
	if x == nil {
		t.Fatal("missing x track")
	}
	if got := x.Evaluate(0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("linear x(0.5) = %v, want 1", got)
	}

	y := c.Curve(curveviz.Binding{Path: "Hips", Property: "m_LocalPosition.y"})
	if got := y.Evaluate(0.25); got != 1 {
		t.Errorf("step y(0.25) = %v, want 1", got)
	}

	if c.Curve(curveviz.Binding{Property: "missing"}) != nil {
		t.Error("Curve for an unknown binding should be nil")
	}

	start, end := c.Duration()
	if start != 0 || end != 2 {
		t.Errorf("Duration() = (%v, %v), want (0, 2)", start, end)
	}
}

func TestParseClipExplicitTangent(t *testing.T) {
	c := mustParse(t, walkClip)
	r := c.Curve(curveviz.Binding{Property: "m_Color.r"})
	keys := r.Keys()
	if keys[1].InTangent != 0 {
		t.Errorf("explicit in tangent = %v, want 0", keys[1].InTangent)
	}
	if keys[1].OutTangent != -0.5 {
		t.Errorf("implicit out tangent = %v, want -0.5", keys[1].OutTangent)
	}
}

func TestParseClipDefaultFrameRate(t *testing.T) {
	c := mustParse(t, `{ name: "A", tracks: [{ property: "p", keys: [{ time: 0, value: 0 }] }] }`)
	if c.FrameRate() != curveviz.DefaultFrameRate {
		t.Errorf("FrameRate() = %v, want %v", c.FrameRate(), curveviz.DefaultFrameRate)
	}
}

func TestParseClipErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"no tracks", `{ name: "A", tracks: [] }`, ErrNoTracks},
		{"no keys", `{ tracks: [{ property: "p", keys: [] }] }`, ErrNoKeys},
		{"duplicate", `{ tracks: [
			{ property: "p", keys: [{ time: 0, value: 0 }] }
			{ property: "p", keys: [{ time: 0, value: 0 }] }
		] }`, ErrDuplicateTrack},
		{"missing property", `{ tracks: [{ keys: [{ time: 0, value: 0 }] }] }`, nil},
		{"unsorted keys", `{ tracks: [{ property: "p", keys: [{ time: 1, value: 0 }, { time: 0, value: 0 }] }] }`, nil},
		{"malformed", `{ tracks: [`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClip([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTrackErrorIndex(t *testing.T) {
	_, err := ParseClip([]byte(`{ tracks: [
		{ property: "a", keys: [{ time: 0, value: 0 }] }
		{ property: "b", keys: [] }
	] }`))
	var te *TrackError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TrackError", err)
	}
	if te.Index != 1 {
		t.Errorf("Index = %d, want 1", te.Index)
	}
}

func TestClipSaveLoad(t *testing.T) {
	c := mustParse(t, walkClip)
	path := filepath.Join(t.TempDir(), "walk.hjson")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadClip(path)
	if err != nil {
		t.Fatalf("LoadClip: %v", err)
	}
	if loaded.ID() == c.ID() {
		t.Error("a reloaded clip should get a new ID")
	}
	for _, tr := range c.Tracks() {
		got := loaded.Curve(tr.Binding)
		if got == nil {
			t.Fatalf("track %v lost", tr.Binding)
		}
		if curveviz.Fingerprint(got) != tr.Curve.Fingerprint() {
			t.Errorf("track %v changed on save", tr.Binding)
		}
	}

	if _, err := LoadClip(filepath.Join(t.TempDir(), "missing.hjson")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadClip(missing) err = %v, want ErrNotExist", err)
	}
}
