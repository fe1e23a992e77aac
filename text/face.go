package text

import (
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Face is a FontSource at one size. Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig

	mu sync.Mutex
	// ot and gt are opened lazily and dropped by Close.
	ot     font.Face
	gt     *gtfont.Face
	shaper shaping.HarfbuzzShaper
}

func newFace(source *FontSource, size float64, config faceConfig) *Face {
	return &Face{
		source: source,
		size:   size,
		config: config,
	}
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// pixelSize returns the size in pixels at the face's DPI.
func (f *Face) pixelSize() float64 {
	return f.size * f.config.dpi / 72
}

// openLocked returns the x/image face, opening it if needed.
// f.mu must be held.
func (f *Face) openLocked() (font.Face, error) {
	if f.ot != nil {
		return f.ot, nil
	}
	ot, err := opentype.NewFace(f.source.ot, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     f.config.dpi,
		Hinting: mapHinting(f.config.hinting),
	})
	if err != nil {
		return nil, err
	}
	f.ot = ot
	return ot, nil
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	ot, err := f.openLocked()
	if err != nil {
		return Metrics{}
	}
	m := ot.Metrics()
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(0, fixedToFloat64(m.Height)-ascent-descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// Advance returns the shaped width of s in pixels.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.source.gt != nil {
		return f.shapeLocked(s)
	}
	ot, err := f.openLocked()
	if err != nil {
		return 0
	}
	return fixedToFloat64(font.MeasureString(ot, s))
}

// Measure returns the advance of s and the line height.
func (f *Face) Measure(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return f.Advance(s), f.Metrics().LineHeight()
}

// Close drops the face's glyph data. The face reopens it on next use.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.ot != nil {
		err = f.ot.Close()
		f.ot = nil
	}
	f.gt = nil
	return err
}
