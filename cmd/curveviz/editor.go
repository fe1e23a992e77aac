package main

import (
	"github.com/gogpu/curveviz"
	"github.com/gogpu/curveviz/timeline"
)

// playheadColor is the color of the current-time marker.
var playheadColor = curveviz.Hex("#e04040")

// curvePainter draws the curve editor's curves, which the editor itself
// would draw underneath the overlay's labels.
type curvePainter struct {
	clipID  string
	drawers map[string]*curveviz.CurveDrawer
}

func newCurvePainter() *curvePainter {
	return &curvePainter{drawers: make(map[string]*curveviz.CurveDrawer)}
}

// Draw strokes every editor curve in its own color.
func (p *curvePainter) Draw(s curveviz.Surface, dev curveviz.Device, v *timeline.View, resolution int) int {
	clip := v.Clip()
	if clip == nil {
		return 0
	}
	if clip.ID() != p.clipID {
		p.Dispose()
		p.clipID = clip.ID()
	}

	n := 0
	width := v.Width
	for _, ec := range v.EditorCurves() {
		d, ok := p.drawers[ec.Key()]
		if !ok {
			hm := curveviz.FromBeginEnd(ec.Color(), ec.Color())
			d = curveviz.NewCurveDrawer(ec.Binding(), hm, clip.FrameRate(), resolution, dev)
			p.drawers[ec.Key()] = d
		}
		keys := ec.Curve().Keys()
		n += d.Draw(s, ec.Curve(), ec.Bounds(), width, keys[0].Time, keys[len(keys)-1].Time)
	}
	return n
}

// Dispose releases every drawer.
func (p *curvePainter) Dispose() {
	for key, d := range p.drawers {
		d.Dispose()
		delete(p.drawers, key)
	}
}

// drawPlayhead marks the current time with a one pixel wide bar.
func drawPlayhead(s curveviz.Surface, dev curveviz.Device, v *timeline.View) {
	x := v.TimeToX(v.Time)
	if x < 0 || x >= v.Width {
		return
	}
	m := dev.NewMaterial()
	curveviz.FillRect(s, m, curveviz.R(x, 0, 1, v.Height), playheadColor)
	m.Release()
}
