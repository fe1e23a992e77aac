package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s to dst with its baseline origin at (x, y).
func (f *Face) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	if s == "" || dst == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ot, err := f.openLocked()
	if err != nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: ot,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}
