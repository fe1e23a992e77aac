// Package text measures and draws curve labels.
//
// The package follows a two-level model:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data once)
//   - Face: a FontSource at one size, cached by the source
//
// Advances come from HarfBuzz shaping (github.com/go-text/typesetting), so
// kerning is reflected in label widths. Glyphs are rasterized with
// golang.org/x/image/font/opentype.
//
// # Example usage
//
//	src, err := text.DefaultSource()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face, err := src.Face(9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, h := face.Measure("Hips : localPosition.x")
//	face.Draw(img, "Hips : localPosition.x", 10, 20, color.White)
package text
