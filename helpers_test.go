package curveviz

import (
	"math"
	"testing"
)

// near reports whether a and b differ by at most tol.
func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

type vertex struct {
	X, Y  float64
	Color RGBA
}

type batch struct {
	Prim     Primitive
	Material Material
	Vertices []vertex
}

// recorder is a Surface and Device that keeps everything it receives.
type recorder struct {
	batches []batch
	color   RGBA
	open    bool

	created  int
	released int
}

type testMaterial struct {
	r        *recorder
	released bool
}

func (m *testMaterial) Release() {
	m.released = true
	m.r.released++
}

func (r *recorder) NewMaterial() Material {
	r.created++
	return &testMaterial{r: r}
}

func (r *recorder) Begin(p Primitive, m Material) {
	if r.open {
		panic("recorder: nested Begin")
	}
	r.open = true
	r.batches = append(r.batches, batch{Prim: p, Material: m})
}

func (r *recorder) Color(c RGBA) {
	r.color = c
}

func (r *recorder) Vertex(x, y float64) {
	if !r.open {
		panic("recorder: Vertex outside Begin/End")
	}
	b := &r.batches[len(r.batches)-1]
	b.Vertices = append(b.Vertices, vertex{X: x, Y: y, Color: r.color})
}

func (r *recorder) End() {
	if !r.open {
		panic("recorder: End without Begin")
	}
	r.open = false
}

func (r *recorder) vertices() []vertex {
	var out []vertex
	for _, b := range r.batches {
		out = append(out, b.Vertices...)
	}
	return out
}

func (r *recorder) reset() {
	r.batches = nil
}

type drawnText struct {
	Rect  Rect
	Text  string
	Size  float64
	Color RGBA
	Align Align
}

// fixedText measures every rune as charWidth pixels.
type fixedText struct {
	charWidth float64
	drawn     []drawnText
	measured  int
}

func (f *fixedText) MeasureText(text string, size float64) (float64, float64) {
	f.measured++
	return f.charWidth * float64(len([]rune(text))), size
}

func (f *fixedText) DrawText(r Rect, text string, size float64, c RGBA, align Align) {
	f.drawn = append(f.drawn, drawnText{Rect: r, Text: text, Size: size, Color: c, Align: align})
}

func mustSampleCurve(t *testing.T, c Curve, frameRate float64, resolution int) *SampledCurve {
	t.Helper()
	var sc SampledCurve
	if !SampleCurve(&sc, c, frameRate, resolution) {
		t.Fatal("SampleCurve reported no keys")
	}
	return &sc
}
