// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"

	"github.com/gogpu/curveviz"
	"github.com/gogpu/curveviz/text"
)

// Canvas is a CPU-backed overlay target. It implements curveviz.Surface,
// curveviz.Device and curveviz.TextRenderer.
//
// Example:
//
//	canvas := render.NewCanvas(800, 600)
//	ov.Draw(canvas, canvas)
//	img := canvas.Image()
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	ras  vector.Rasterizer
	opts canvasOptions

	open  bool
	prim  curveviz.Primitive
	color curveviz.RGBA
	verts []canvasVertex

	live int
}

type canvasVertex struct {
	x, y float64
	c    curveviz.RGBA
}

// NewCanvas creates a canvas cleared to the configured background.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		src, err := text.DefaultSource()
		if err != nil {
			curveviz.Logger().Warn("render: default font unavailable, labels disabled", "error", err)
		}
		o.source = src
	}
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		opts:  o,
		color: curveviz.White,
	}
	c.Clear(o.background)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (c *Canvas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (c *Canvas) Pixels() []byte {
	return c.img.Pix
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col curveviz.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// Begin implements curveviz.Surface.
func (c *Canvas) Begin(p curveviz.Primitive, _ curveviz.Material) {
	if c.open {
		panic("render: Canvas.Begin called before End")
	}
	c.open = true
	c.prim = p
	c.verts = c.verts[:0]
}

// Color implements curveviz.Surface.
func (c *Canvas) Color(col curveviz.RGBA) {
	c.color = col
}

// Vertex implements curveviz.Surface.
func (c *Canvas) Vertex(x, y float64) {
	if !c.open {
		panic("render: Canvas.Vertex called outside Begin/End")
	}
	c.verts = append(c.verts, canvasVertex{x: x, y: y, c: c.color})
}

// End implements curveviz.Surface and rasterizes the batch.
func (c *Canvas) End() {
	if !c.open {
		panic("render: Canvas.End called without Begin")
	}
	c.open = false

	switch c.prim {
	case curveviz.PrimitiveLineStrip:
		for i := 1; i < len(c.verts); i++ {
			c.segment(c.verts[i-1], c.verts[i])
		}
	case curveviz.PrimitiveQuads:
		for i := 0; i+4 <= len(c.verts); i += 4 {
			c.quad(c.verts[i : i+4])
		}
	}
}

// segment strokes a line between a and b with square caps, colored by the
// average of the endpoint colors.
func (c *Canvas) segment(a, b canvasVertex) {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := c.opts.lineWidth / 2
	ux, uy := dx/length*half, dy/length*half
	nx, ny := -uy, ux

	pts := [4][2]float64{
		{a.x - ux + nx, a.y - uy + ny},
		{b.x + ux + nx, b.y + uy + ny},
		{b.x + ux - nx, b.y + uy - ny},
		{a.x - ux - nx, a.y - uy - ny},
	}
	c.fill(pts[:], image.NewUniform(a.c.Lerp(b.c, 0.5).Color()))
}

// quad fills v, a bottom-left, top-left, top-right, bottom-right quad whose
// color runs horizontally from v[0] to v[2].
func (c *Canvas) quad(v []canvasVertex) {
	pts := [4][2]float64{
		{v[0].x, v[0].y},
		{v[1].x, v[1].y},
		{v[2].x, v[2].y},
		{v[3].x, v[3].y},
	}
	var src image.Image
	if v[0].c.ApproxEqual(v[2].c) || v[0].x == v[2].x {
		src = image.NewUniform(v[0].c.Color())
	} else {
		src = horizontalGradient{x0: v[0].x, x1: v[2].x, c0: v[0].c, c1: v[2].c}
	}
	c.fill(pts[:], src)
}

// fill rasterizes a closed polygon over its pixel bounding box.
func (c *Canvas) fill(pts [][2]float64, src image.Image) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	c.ras.Reset(box.Dx(), box.Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(float32(pts[0][0]-ox), float32(pts[0][1]-oy))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, box, src, box.Min)
}

// horizontalGradient is an unbounded image whose color depends on x only.
type horizontalGradient struct {
	x0, x1 float64
	c0, c1 curveviz.RGBA
}

func (g horizontalGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g horizontalGradient) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (g horizontalGradient) At(x, _ int) color.Color {
	t := (float64(x) + 0.5 - g.x0) / (g.x1 - g.x0)
	return g.c0.Lerp(g.c1, math.Max(0, math.Min(1, t))).Color()
}

// NewMaterial implements curveviz.Device. Canvas materials carry no state.
func (c *Canvas) NewMaterial() curveviz.Material {
	c.live++
	return &canvasMaterial{canvas: c}
}

// LiveMaterials returns the number of materials not yet released.
func (c *Canvas) LiveMaterials() int {
	return c.live
}

type canvasMaterial struct {
	canvas   *Canvas
	released bool
}

func (m *canvasMaterial) Release() {
	if !m.released {
		m.released = true
		m.canvas.live--
	}
}

// face returns the label face at size, or nil when no font is available.
func (c *Canvas) face(size float64) *text.Face {
	if c.opts.source == nil {
		return nil
	}
	f, err := c.opts.source.Face(size)
	if err != nil {
		return nil
	}
	return f
}

// MeasureText implements curveviz.TextRenderer.
func (c *Canvas) MeasureText(s string, size float64) (width, height float64) {
	f := c.face(size)
	if f == nil {
		return 0, 0
	}
	return f.Measure(s)
}

// DrawText implements curveviz.TextRenderer. The text is vertically
// centered in r.
func (c *Canvas) DrawText(r curveviz.Rect, s string, size float64, col curveviz.RGBA, align curveviz.Align) {
	f := c.face(size)
	if f == nil || s == "" {
		return
	}
	x := r.X
	if align == curveviz.AlignCenter {
		x += (r.Width - f.Advance(s)) / 2
	}
	y := r.Y + f.Metrics().Baseline(r.Height)
	f.Draw(c.img, s, x, y, col.Color())
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := c.EncodePNG(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return f.Close()
}
