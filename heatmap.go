package curveviz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendMode defines how a heatmap blends between neighbouring stops.
type BlendMode int

const (
	// BlendPerceptual interpolates RGB in CIE L*a*b* space (default).
	BlendPerceptual BlendMode = iota
	// BlendLinear interpolates RGB in linear (gamma-decoded) space.
	BlendLinear
	// BlendFixed returns the color of the next stop without blending.
	BlendFixed
)

// String returns the mode name used in preference files.
func (m BlendMode) String() string {
	switch m {
	case BlendPerceptual:
		return "perceptual"
	case BlendLinear:
		return "linear"
	case BlendFixed:
		return "fixed"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// ParseBlendMode parses a mode name. The empty string selects BlendPerceptual.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perceptual":
		return BlendPerceptual, nil
	case "linear":
		return BlendLinear, nil
	case "fixed":
		return BlendFixed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, s)
	}
}

// ColorStop represents a color at a specific position in a heatmap.
type ColorStop struct {
	Offset float64 // Position in the heatmap, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Heatmap maps a normalized scalar in [0, 1] to a display color.
// A Heatmap is immutable once constructed and safe to share between drawers.
type Heatmap struct {
	stops []ColorStop
	mode  BlendMode
}

// NewHeatmap creates a heatmap from color stops. Stops are copied, their
// offsets clamped to [0, 1] and sorted; stops with equal offsets keep their
// relative order so hard edges can be expressed.
func NewHeatmap(mode BlendMode, stops ...ColorStop) *Heatmap {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	for i := range sorted {
		sorted[i].Offset = clamp01(sorted[i].Offset)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &Heatmap{stops: sorted, mode: mode}
}

// FromBeginEnd returns a two-stop perceptual heatmap from begin to end.
func FromBeginEnd(begin, end RGBA) *Heatmap {
	return NewHeatmap(BlendPerceptual,
		ColorStop{Offset: 0, Color: begin},
		ColorStop{Offset: 1, Color: end},
	)
}

// Mode returns the blend mode.
func (h *Heatmap) Mode() BlendMode {
	return h.mode
}

// Stops returns a copy of the sorted color stops.
func (h *Heatmap) Stops() []ColorStop {
	out := make([]ColorStop, len(h.stops))
	copy(out, h.stops)
	return out
}

// Evaluate returns the color at position t. Positions outside [0, 1] are
// clamped; NaN evaluates as 0. A nil or empty heatmap yields Transparent.
func (h *Heatmap) Evaluate(t float64) RGBA {
	if h == nil || len(h.stops) == 0 {
		return Transparent
	}
	if len(h.stops) == 1 {
		return h.stops[0].Color
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = clamp01(t)

	idx := sort.Search(len(h.stops), func(i int) bool {
		return h.stops[i].Offset >= t
	})
	if idx == 0 {
		return h.stops[0].Color
	}
	if idx >= len(h.stops) {
		return h.stops[len(h.stops)-1].Color
	}

	stop1 := h.stops[idx-1]
	stop2 := h.stops[idx]
	if h.mode == BlendFixed {
		return stop2.Color
	}
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return blend(stop1.Color, stop2.Color, localT, h.mode)
}

// blend interpolates RGB in the space selected by mode. Alpha is always
// interpolated linearly.
func blend(c1, c2 RGBA, t float64, mode BlendMode) RGBA {
	a := c1.A + (c2.A-c1.A)*t
	from := toColorful(c1)
	to := toColorful(c2)

	var out colorful.Color
	switch mode {
	case BlendLinear:
		r1, g1, b1 := from.LinearRgb()
		r2, g2, b2 := to.LinearRgb()
		out = colorful.LinearRgb(lerp(r1, r2, t), lerp(g1, g2, t), lerp(b1, b2, t))
	default:
		out = from.BlendLab(to, t)
	}
	out = out.Clamped()
	return RGBA{R: out.R, G: out.G, B: out.B, A: a}
}

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}
