package curveviz

import (
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
)

// preferencesFile is the on-disk form of Preferences. Absent fields keep
// their default values.
type preferencesFile struct {
	DefaultHeatmap     *heatmapFile   `json:"defaultHeatmap,omitempty"`
	Overrides          []overrideFile `json:"overrides,omitempty"`
	Resolution         *int           `json:"resolution,omitempty"`
	LabelColor         string         `json:"labelColor,omitempty"`
	LabelFontSize      *int           `json:"labelFontSize,omitempty"`
	ColorBandHeight    *int           `json:"colorBandHeight,omitempty"`
	ParentLineColor    string         `json:"parentLineColor,omitempty"`
	DopeSheetShowCurve *bool          `json:"dopeSheetShowCurve,omitempty"`
	DopeSheetShowLabel *bool          `json:"dopeSheetShowLabel,omitempty"`
	CurvesShowLabel    *bool          `json:"curvesShowLabel,omitempty"`
}

type heatmapFile struct {
	Mode  string     `json:"mode,omitempty"`
	Stops []stopFile `json:"stops"`
}

type stopFile struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

type overrideFile struct {
	Name    string      `json:"name"`
	Heatmap heatmapFile `json:"heatmap"`
}

// LoadPreferences reads HJSON preferences from path on top of
// DefaultPreferences and validates the result.
func LoadPreferences(path string) (Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preferences{}, fmt.Errorf("curveviz: load preferences: %w", err)
	}
	p, err := ParsePreferences(data)
	if err != nil {
		return Preferences{}, fmt.Errorf("curveviz: load preferences %s: %w", path, err)
	}
	return p, nil
}

// ParsePreferences decodes HJSON preferences on top of DefaultPreferences
// and validates the result. A present overrides list replaces the default
// list entirely.
func ParsePreferences(data []byte) (Preferences, error) {
	var f preferencesFile
	if err := hjson.Unmarshal(data, &f); err != nil {
		return Preferences{}, fmt.Errorf("decode: %w", err)
	}

	p := DefaultPreferences()
	if f.DefaultHeatmap != nil {
		h, err := f.DefaultHeatmap.heatmap()
		if err != nil {
			return Preferences{}, &PreferenceError{Field: "defaultHeatmap", Reason: "invalid", Err: err}
		}
		p.DefaultHeatmap = h
	}
	if f.Overrides != nil {
		p.Overrides = make([]HeatmapOverride, 0, len(f.Overrides))
		for i, o := range f.Overrides {
			h, err := o.Heatmap.heatmap()
			if err != nil {
				return Preferences{}, &PreferenceError{Field: overrideField(i), Reason: "invalid heatmap", Err: err}
			}
			p.Overrides = append(p.Overrides, HeatmapOverride{Name: o.Name, Heatmap: h})
		}
	}
	if f.Resolution != nil {
		p.Resolution = *f.Resolution
	}
	if f.LabelFontSize != nil {
		p.LabelFontSize = *f.LabelFontSize
	}
	if f.ColorBandHeight != nil {
		p.ColorBandHeight = *f.ColorBandHeight
	}
	if f.LabelColor != "" {
		c, err := ParseHex(f.LabelColor)
		if err != nil {
			return Preferences{}, &PreferenceError{Field: "labelColor", Reason: "invalid", Err: err}
		}
		p.LabelColor = c
	}
	if f.ParentLineColor != "" {
		c, err := ParseHex(f.ParentLineColor)
		if err != nil {
			return Preferences{}, &PreferenceError{Field: "parentLineColor", Reason: "invalid", Err: err}
		}
		p.ParentLineColor = c
	}
	setBool(&p.DopeSheetShowCurve, f.DopeSheetShowCurve)
	setBool(&p.DopeSheetShowLabel, f.DopeSheetShowLabel)
	setBool(&p.CurvesShowLabel, f.CurvesShowLabel)

	if err := p.Validate(); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func (h heatmapFile) heatmap() (*Heatmap, error) {
	if len(h.Stops) == 0 {
		return nil, ErrNoStops
	}
	mode, err := ParseBlendMode(h.Mode)
	if err != nil {
		return nil, err
	}
	stops := make([]ColorStop, len(h.Stops))
	for i, s := range h.Stops {
		c, err := ParseHex(s.Color)
		if err != nil {
			return nil, err
		}
		stops[i] = ColorStop{Offset: s.Offset, Color: c}
	}
	return NewHeatmap(mode, stops...), nil
}

func toHeatmapFile(h *Heatmap) *heatmapFile {
	if h == nil {
		return nil
	}
	f := &heatmapFile{Mode: h.mode.String(), Stops: make([]stopFile, len(h.stops))}
	for i, s := range h.stops {
		f.Stops[i] = stopFile{Offset: s.Offset, Color: s.Color.Hex()}
	}
	return f
}

// MarshalHJSON encodes every preference field as HJSON.
func (p *Preferences) MarshalHJSON() ([]byte, error) {
	f := preferencesFile{
		DefaultHeatmap:     toHeatmapFile(p.DefaultHeatmap),
		Resolution:         &p.Resolution,
		LabelColor:         p.LabelColor.Hex(),
		LabelFontSize:      &p.LabelFontSize,
		ColorBandHeight:    &p.ColorBandHeight,
		ParentLineColor:    p.ParentLineColor.Hex(),
		DopeSheetShowCurve: &p.DopeSheetShowCurve,
		DopeSheetShowLabel: &p.DopeSheetShowLabel,
		CurvesShowLabel:    &p.CurvesShowLabel,
	}
	f.Overrides = make([]overrideFile, 0, len(p.Overrides))
	for _, o := range p.Overrides {
		hf := toHeatmapFile(o.Heatmap)
		if hf == nil {
			continue
		}
		f.Overrides = append(f.Overrides, overrideFile{Name: o.Name, Heatmap: *hf})
	}
	data, err := hjson.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("curveviz: encode preferences: %w", err)
	}
	return data, nil
}

// Save writes the preferences to path as HJSON.
func (p *Preferences) Save(path string) error {
	data, err := p.MarshalHJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("curveviz: save preferences: %w", err)
	}
	return nil
}
