package curveviz

import (
	"errors"
	"strconv"
)

// Default preference values.
const (
	DefaultResolution      = 1
	DefaultLabelFontSize   = 9
	DefaultColorBandHeight = 3
)

// HeatmapOverride replaces the default heatmap for properties whose token
// (the name after the last '.') equals Name.
type HeatmapOverride struct {
	Name    string
	Heatmap *Heatmap
}

// Preferences configures how the overlay draws curves and labels.
type Preferences struct {
	// DefaultHeatmap colors curves that no override matches.
	DefaultHeatmap *Heatmap
	// Overrides are matched in order; the first match wins.
	Overrides []HeatmapOverride
	// Resolution multiplies the clip frame rate to get the sample density.
	Resolution int

	LabelColor    RGBA
	LabelFontSize int

	// ColorBandHeight is the height in pixels of color group bands.
	ColorBandHeight int
	// ParentLineColor fills dope lines that have children.
	ParentLineColor RGBA

	DopeSheetShowCurve bool
	DopeSheetShowLabel bool
	CurvesShowLabel    bool
}

// DefaultPreferences returns the initial preferences: red, green, blue and
// amber ramps for the x/r, y/g, z/b and w/a channels over a yellow default.
func DefaultPreferences() Preferences {
	red := channelHeatmap(1, 0.1, 0.1)
	green := channelHeatmap(0.1, 0.75, 0.1)
	blue := channelHeatmap(0.1, 0.75, 1)
	amber := channelHeatmap(1, 0.75, 0.1)

	return Preferences{
		DefaultHeatmap: channelHeatmap(1, 1, 0.2),
		Overrides: []HeatmapOverride{
			{Name: "x", Heatmap: red},
			{Name: "r", Heatmap: red},
			{Name: "y", Heatmap: green},
			{Name: "g", Heatmap: green},
			{Name: "z", Heatmap: blue},
			{Name: "b", Heatmap: blue},
			{Name: "w", Heatmap: amber},
			{Name: "a", Heatmap: amber},
		},
		Resolution:         DefaultResolution,
		LabelColor:         NRGBA(0.47, 0.67, 0.98, 0.5),
		LabelFontSize:      DefaultLabelFontSize,
		ColorBandHeight:    DefaultColorBandHeight,
		ParentLineColor:    NRGBA(0, 0, 0, 0.2),
		DopeSheetShowCurve: true,
		DopeSheetShowLabel: true,
		CurvesShowLabel:    true,
	}
}

// channelHeatmap fades one hue from quarter to three-quarter opacity.
func channelHeatmap(r, g, b float64) *Heatmap {
	return FromBeginEnd(NRGBA(r, g, b, 0.25), NRGBA(r, g, b, 0.75))
}

// HeatmapFor returns the heatmap for a property token: the first matching
// override, or the default heatmap.
func (p *Preferences) HeatmapFor(token string) *Heatmap {
	for _, o := range p.Overrides {
		if o.Name == token && o.Heatmap != nil {
			return o.Heatmap
		}
	}
	return p.DefaultHeatmap
}

// Validate reports every invalid field, joined.
func (p *Preferences) Validate() error {
	var errs []error
	if p.Resolution < 1 {
		errs = append(errs, &PreferenceError{Field: "resolution", Reason: "must be at least 1"})
	}
	if p.LabelFontSize <= 0 {
		errs = append(errs, &PreferenceError{Field: "labelFontSize", Reason: "must be positive"})
	}
	if p.ColorBandHeight < 0 {
		errs = append(errs, &PreferenceError{Field: "colorBandHeight", Reason: "must not be negative"})
	}
	if p.DefaultHeatmap == nil || len(p.DefaultHeatmap.stops) == 0 {
		errs = append(errs, &PreferenceError{Field: "defaultHeatmap", Reason: "invalid", Err: ErrNoStops})
	}
	for i, o := range p.Overrides {
		if o.Name == "" {
			errs = append(errs, &PreferenceError{Field: overrideField(i), Reason: "empty name"})
		}
		if o.Heatmap == nil || len(o.Heatmap.stops) == 0 {
			errs = append(errs, &PreferenceError{Field: overrideField(i), Reason: "invalid", Err: ErrNoStops})
		}
	}
	return errors.Join(errs...)
}

func overrideField(i int) string {
	return "overrides[" + strconv.Itoa(i) + "]"
}
