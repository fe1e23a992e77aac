package curveviz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if p.Resolution != 1 || p.LabelFontSize != 9 || p.ColorBandHeight != 3 {
		t.Errorf("numeric defaults = %d/%d/%d, want 1/9/3", p.Resolution, p.LabelFontSize, p.ColorBandHeight)
	}
	if !p.DopeSheetShowCurve || !p.DopeSheetShowLabel || !p.CurvesShowLabel {
		t.Error("every toggle should default to on")
	}
	if !colorsEqual(p.LabelColor, NRGBA(0.47, 0.67, 0.98, 0.5), 1e-9) {
		t.Errorf("LabelColor = %+v", p.LabelColor)
	}
	if !colorsEqual(p.ParentLineColor, NRGBA(0, 0, 0, 0.2), 1e-9) {
		t.Errorf("ParentLineColor = %+v", p.ParentLineColor)
	}
}

func TestHeatmapFor(t *testing.T) {
	p := DefaultPreferences()
	tests := []struct {
		token string
		want  RGBA
	}{
		{"x", NRGBA(1, 0.1, 0.1, 0.25)},
		{"r", NRGBA(1, 0.1, 0.1, 0.25)},
		{"y", NRGBA(0.1, 0.75, 0.1, 0.25)},
		{"b", NRGBA(0.1, 0.75, 1, 0.25)},
		{"w", NRGBA(1, 0.75, 0.1, 0.25)},
		{"m_Intensity", NRGBA(1, 1, 0.2, 0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := p.HeatmapFor(tt.token).Evaluate(0)
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("HeatmapFor(%q)(0) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestPreferencesValidate(t *testing.T) {
	p := DefaultPreferences()
	p.Resolution = 0
	p.ColorBandHeight = -1
	p.Overrides = append(p.Overrides, HeatmapOverride{Name: "", Heatmap: NewHeatmap(BlendLinear)})

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var pe *PreferenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %T, want *PreferenceError", err)
	}
	if !errors.Is(err, ErrNoStops) {
		t.Error("empty override heatmap should report ErrNoStops")
	}
	for _, field := range []string{"resolution", "colorBandHeight", "overrides[8]"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestParsePreferences(t *testing.T) {
	src := `
	# Comments and unquoted strings are allowed.
	{
		resolution: 2
		labelColor: "#ff000080"
		dopeSheetShowLabel: false
		defaultHeatmap: {
			mode: linear
			stops: [
				{ offset: 0, color: "#000000" }
				{ offset: 1, color: "#ffffff" }
			]
		}
		overrides: [
			{ name: "x", heatmap: { stops: [ { offset: 0, color: "#00ff00" } ] } }
		]
	}`
	p, err := ParsePreferences([]byte(src))
	if err != nil {
		t.Fatalf("ParsePreferences: %v", err)
	}
	if p.Resolution != 2 {
		t.Errorf("Resolution = %d, want 2", p.Resolution)
	}
	if p.DopeSheetShowLabel {
		t.Error("DopeSheetShowLabel should be false")
	}
	if !p.DopeSheetShowCurve {
		t.Error("absent toggles keep their defaults")
	}
	if p.LabelFontSize != DefaultLabelFontSize {
		t.Errorf("LabelFontSize = %d, want default", p.LabelFontSize)
	}
	if !colorsEqual(p.LabelColor, NRGBA(1, 0, 0, 128.0/255), 1e-9) {
		t.Errorf("LabelColor = %+v", p.LabelColor)
	}
	if p.DefaultHeatmap.Mode() != BlendLinear {
		t.Errorf("default heatmap mode = %v, want linear", p.DefaultHeatmap.Mode())
	}
	if len(p.Overrides) != 1 {
		t.Fatalf("overrides = %d, want the file's list only", len(p.Overrides))
	}
	if got := p.HeatmapFor("x").Evaluate(0.7); !colorsEqual(got, RGB(0, 1, 0), 1e-9) {
		t.Errorf("x override = %+v, want green", got)
	}
}

func TestParsePreferencesErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
	}{
		{"bad color", `{labelColor: "#zz"}`, ErrInvalidColor},
		{"bad mode", `{defaultHeatmap: {mode: "hsv", stops: [{offset: 0, color: "#fff"}]}}`, ErrUnknownBlendMode},
		{"no stops", `{overrides: [{name: "x", heatmap: {stops: []}}]}`, ErrNoStops},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePreferences([]byte(tt.src))
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}

	if _, err := ParsePreferences([]byte(`{resolution: 0}`)); err == nil {
		t.Error("resolution 0 should fail validation")
	}
	if _, err := ParsePreferences([]byte(`{ unterminated`)); err == nil {
		t.Error("malformed HJSON should fail")
	}
}

func TestPreferencesSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.hjson")

	p := DefaultPreferences()
	p.Resolution = 3
	p.CurvesShowLabel = false
	if err := p.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadPreferences(path)
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if got.Resolution != 3 || got.CurvesShowLabel {
		t.Errorf("loaded = resolution %d, curvesShowLabel %v", got.Resolution, got.CurvesShowLabel)
	}
	if len(got.Overrides) != len(p.Overrides) {
		t.Fatalf("overrides = %d, want %d", len(got.Overrides), len(p.Overrides))
	}
	for i := range p.Overrides {
		if got.Overrides[i].Name != p.Overrides[i].Name {
			t.Errorf("override %d = %q, want %q", i, got.Overrides[i].Name, p.Overrides[i].Name)
		}
		// Colors survive at 8-bit precision.
		if !colorsEqual(got.Overrides[i].Heatmap.Evaluate(1), p.Overrides[i].Heatmap.Evaluate(1), 1.0/255) {
			t.Errorf("override %d end color changed", i)
		}
	}
}

func TestLoadPreferencesMissing(t *testing.T) {
	_, err := LoadPreferences(filepath.Join(t.TempDir(), "missing.hjson"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
