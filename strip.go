package curveviz

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Primitive selects how a Surface assembles the vertices between Begin and
// End.
type Primitive int

const (
	// PrimitiveLineStrip connects every vertex to the next one.
	PrimitiveLineStrip Primitive = iota
	// PrimitiveQuads groups vertices by four into filled quadrilaterals,
	// wound bottom-left, top-left, top-right, bottom-right.
	PrimitiveQuads
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case PrimitiveLineStrip:
		return "LineStrip"
	case PrimitiveQuads:
		return "Quads"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// Topology returns the GPU topology used once the primitive is expanded for
// upload. Quads are split into two triangles each.
func (p Primitive) Topology() gputypes.PrimitiveTopology {
	if p == PrimitiveLineStrip {
		return gputypes.PrimitiveTopologyLineStrip
	}
	return gputypes.PrimitiveTopologyTriangleList
}

// Surface receives immediate-mode geometry. Color sets the color of every
// following vertex until changed. Begin and End calls are always balanced.
type Surface interface {
	Begin(p Primitive, m Material)
	Color(c RGBA)
	Vertex(x, y float64)
	End()
}

// Material is a drawing resource owned by a single drawer. It is acquired
// lazily on first draw and released exactly once when the drawer is
// disposed.
type Material interface {
	Release()
}

// Device creates materials for drawers.
type Device interface {
	NewMaterial() Material
}

// DrawCurveStrip emits sc as a colored line strip inside rect, clipped to
// [0, viewportWidth]. Vertex y follows the value (bottom = MinValue,
// top+1 = MaxValue) and vertex color is hm evaluated at the same rate.
// It returns the number of vertices emitted.
func DrawCurveStrip(s Surface, m Material, sc *SampledCurve, rect Rect, viewportWidth float64, hm *Heatmap) int {
	if sc == nil || sc.Len() == 0 {
		return 0
	}

	xMin := max(0, rect.XMin())
	xMax := min(viewportWidth, rect.XMax())

	if sc.Constant {
		if xMin > xMax {
			return 0
		}
		y := rect.Center().Y
		s.Begin(PrimitiveLineStrip, m)
		s.Color(hm.Evaluate(0.5))
		s.Vertex(xMin, y)
		s.Vertex(xMax, y)
		s.End()
		return 2
	}

	vr := ClipSamples(sc.Len()-1, rect, viewportWidth)
	if vr.Empty() {
		return 0
	}

	w := stripWriter{s: s, rect: rect, sc: sc, hm: hm}
	s.Begin(PrimitiveLineStrip, m)

	// From the screen edge to the first visible sample.
	if vr.LeadingEdge() {
		edge := lerp(sc.Right[vr.Begin-1], sc.Left[vr.Begin], vr.leadingEdgeRate(rect))
		w.vertex(vr.XMin, edge)
	}

	for i := vr.Begin; i <= vr.End; i++ {
		x := SampleX(rect, i, vr.N)
		w.vertex(x, sc.Left[i])
		w.vertex(x, sc.Right[i])
	}

	// From the last visible sample to the screen edge.
	if vr.TrailingEdge() {
		edge := lerp(sc.Right[vr.End], sc.Left[vr.End+1], vr.trailingEdgeRate(rect))
		w.vertex(vr.XMax, edge)
	}

	s.End()
	return w.count
}

// stripWriter maps values to pixel rows and heatmap colors.
type stripWriter struct {
	s     Surface
	rect  Rect
	sc    *SampledCurve
	hm    *Heatmap
	count int
}

func (w *stripWriter) vertex(x, value float64) {
	rate := valueRate(w.sc.MinValue, w.sc.MaxValue, value)
	y := lerp(w.rect.YMax(), w.rect.YMin()+1, rate)
	w.s.Color(w.hm.Evaluate(rate))
	w.s.Vertex(x, y)
	w.count++
}

// DrawGradientBand emits sc as a horizontal color band occupying the bottom
// bandHeight pixels of rect, clipped to [0, viewportWidth]. Each quad's left
// and right edges carry solid colors taken from the channel composite.
// It returns the number of vertices emitted.
func DrawGradientBand(s Surface, m Material, sc *SampledColors, rect Rect, viewportWidth, bandHeight float64) int {
	if sc == nil || sc.Len() == 0 || bandHeight <= 0 {
		return 0
	}

	xMin := max(0, rect.XMin())
	xMax := min(viewportWidth, rect.XMax())
	yMin := rect.YMax() - bandHeight
	yMax := rect.YMax()

	if sc.Constant {
		if xMin > xMax {
			return 0
		}
		s.Begin(PrimitiveQuads, m)
		emitQuad(s, xMin, xMax, yMin, yMax, sc.Right[0], sc.Right[0])
		s.End()
		return 4
	}

	vr := ClipSamples(sc.Len()-1, rect, viewportWidth)
	if vr.Empty() {
		return 0
	}

	count := 0
	s.Begin(PrimitiveQuads, m)

	if vr.LeadingEdge() {
		beginX := SampleX(rect, vr.Begin, vr.N)
		c0 := sc.Right[vr.Begin-1].Lerp(sc.Left[vr.Begin], vr.leadingEdgeRate(rect))
		emitQuad(s, vr.XMin, beginX, yMin, yMax, c0, sc.Left[vr.Begin])
		count += 4
	}

	for i := vr.Begin; i < vr.End; i++ {
		x0 := SampleX(rect, i, vr.N)
		x1 := SampleX(rect, i+1, vr.N)
		emitQuad(s, x0, x1, yMin, yMax, sc.Right[i], sc.Left[i+1])
		count += 4
	}

	if vr.TrailingEdge() {
		endX := SampleX(rect, vr.End, vr.N)
		c1 := sc.Right[vr.End].Lerp(sc.Left[vr.End+1], vr.trailingEdgeRate(rect))
		emitQuad(s, endX, vr.XMax, yMin, yMax, sc.Right[vr.End], c1)
		count += 4
	}

	s.End()
	return count
}

// emitQuad writes one quad whose left edge is c0 and right edge is c1.
func emitQuad(s Surface, x0, x1, yMin, yMax float64, c0, c1 RGBA) {
	s.Color(c0)
	s.Vertex(x0, yMin)
	s.Vertex(x0, yMax)
	s.Color(c1)
	s.Vertex(x1, yMax)
	s.Vertex(x1, yMin)
}

// FillRect emits a single solid quad.
func FillRect(s Surface, m Material, r Rect, c RGBA) {
	if r.Empty() {
		return
	}
	s.Begin(PrimitiveQuads, m)
	emitQuad(s, r.XMin(), r.XMax(), r.YMin(), r.YMax(), c, c)
	s.End()
}
