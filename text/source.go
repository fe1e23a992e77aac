package text

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/curveviz/internal/cache"
)

// FontSource is a parsed font shared by every Face created from it.
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	ot   *opentype.Font
	// gt is nil when go-text cannot parse the font; faces then measure
	// with x/image advances.
	gt   *gtfont.Font
	name string

	mu     sync.Mutex
	faces  *cache.Cache[faceKey, *Face]
	closed bool
}

// faceKey identifies a cached face.
type faceKey struct {
	size   float64
	config faceConfig
}

// NewFontSource parses TTF or OTF data.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &FontSource{
		data: data,
		ot:   ot,
		name: config.name,
	}
	if gt, err := gtfont.ParseTTF(bytes.NewReader(data)); err == nil {
		s.gt = gt.Font
	}
	if s.name == "" {
		s.name = familyName(ot)
	}
	s.faces = cache.New(config.cacheLimit, func(_ faceKey, f *Face) {
		_ = f.Close()
	})
	return s, nil
}

// NewFontSourceFromFile loads a font from a file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return NewFontSource(data, opts...)
}

var defaultSource = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(goregular.TTF)
})

// DefaultSource returns the shared Go Regular font source.
func DefaultSource() (*FontSource, error) {
	return defaultSource()
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Face returns the face at size points. Faces are cached per size and
// options; an evicted face stays usable and reopens its glyph data on
// demand.
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, &InvalidSizeError{Size: size}
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSourceClosed
	}
	key := faceKey{size: size, config: config}
	return s.faces.GetOrCreate(key, func() *Face {
		return newFace(s, size, config)
	}), nil
}

// CachedFaces returns the number of faces currently cached.
func (s *FontSource) CachedFaces() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faces.Len()
}

// Close releases every cached face. Later Face calls fail with
// ErrSourceClosed.
func (s *FontSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.faces.Clear()
	s.closed = true
	return nil
}

// familyName extracts the family name, falling back to the full name.
func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
