package text

import "golang.org/x/image/font"

// DefaultFaceCacheLimit is the number of faces a FontSource keeps open.
const DefaultFaceCacheLimit = 16

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	name       string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: DefaultFaceCacheLimit,
	}
}

// WithCacheLimit sets the maximum number of cached faces.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		if n >= 0 {
			c.cacheLimit = n
		}
	}
}

// WithName overrides the family name read from the font.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// Hinting selects glyph outline hinting.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical snaps to the pixel grid vertically only.
	HintingVertical
	// HintingFull snaps to the pixel grid in both directions.
	HintingFull
)

// mapHinting converts Hinting to x/image font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face. It is comparable so it can key
// the face cache.
type faceConfig struct {
	hinting  Hinting
	language string
	dpi      float64
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting:  HintingFull,
		language: "en",
		dpi:      72,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "ja").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithDPI sets the resolution sizes are interpreted at. The default of 72
// makes one point one pixel.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}
