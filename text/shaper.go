package text

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shapeLocked runs HarfBuzz over s and returns the total advance in pixels.
// f.mu must be held and f.source.gt must be non-nil.
func (f *Face) shapeLocked(s string) float64 {
	if f.gt == nil {
		// gtfont.Face is not safe for concurrent use; f.mu guards it.
		f.gt = gtfont.NewFace(f.source.gt)
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.gt,
		Size:      floatToFixed(f.pixelSize()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(f.config.language),
	}
	out := f.shaper.Shape(input)
	return fixedToFloat64(out.Advance)
}

// detectScript returns the script of the first non-space rune. Labels are
// short property paths, so one script per run is enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
