// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/curveviz"
)

func pixel(c *Canvas, x, y int) curveviz.RGBA {
	return curveviz.FromColor(c.Image().At(x, y))
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(40, 20, WithBackground(curveviz.RGB(0, 0, 1)))
	if c.Width() != 40 || c.Height() != 20 {
		t.Errorf("size = %dx%d, want 40x20", c.Width(), c.Height())
	}
	if c.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", c.Format())
	}
	if c.Stride() != 40*4 || len(c.Pixels()) != 40*20*4 {
		t.Errorf("Stride() = %d, len(Pixels()) = %d", c.Stride(), len(c.Pixels()))
	}
	if got := pixel(c, 5, 5); !got.ApproxEqual(curveviz.RGB(0, 0, 1)) {
		t.Errorf("background = %v, want blue", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(20, 20)
	curveviz.FillRect(c, nil, curveviz.R(5, 5, 10, 10), curveviz.RGB(1, 0, 0))

	if got := pixel(c, 10, 10); !got.ApproxEqual(curveviz.RGB(1, 0, 0)) {
		t.Errorf("inside = %v, want red", got)
	}
	if got := pixel(c, 2, 2); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestCanvasQuadGradient(t *testing.T) {
	c := NewCanvas(100, 10)
	c.Begin(curveviz.PrimitiveQuads, nil)
	c.Color(curveviz.RGB(0, 0, 0))
	c.Vertex(0, 10)
	c.Vertex(0, 0)
	c.Color(curveviz.RGB(1, 1, 1))
	c.Vertex(100, 0)
	c.Vertex(100, 10)
	c.End()

	left, mid, right := pixel(c, 1, 5), pixel(c, 50, 5), pixel(c, 98, 5)
	if !(left.R < mid.R && mid.R < right.R) {
		t.Errorf("gradient not increasing: %v %v %v", left.R, mid.R, right.R)
	}
	if mid.R < 0.4 || mid.R > 0.6 {
		t.Errorf("midpoint = %v, want about 0.5", mid.R)
	}
}

func TestCanvasLineStrip(t *testing.T) {
	c := NewCanvas(50, 50, WithLineWidth(2))
	c.Begin(curveviz.PrimitiveLineStrip, nil)
	c.Color(curveviz.RGB(0, 1, 0))
	c.Vertex(5, 25)
	c.Vertex(45, 25)
	c.End()

	if got := pixel(c, 25, 25); got.G < 0.9 {
		t.Errorf("on line = %v, want green", got)
	}
	if got := pixel(c, 25, 10); got.A != 0 {
		t.Errorf("off line = %v, want transparent", got)
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	c := NewCanvas(10, 10)
	curveviz.FillRect(c, nil, curveviz.R(-50, -50, 20, 20), curveviz.White)
	for _, v := range c.Pixels() {
		if v != 0 {
			t.Fatal("offscreen rect touched the canvas")
		}
	}
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(120, 20)
	w, h := c.MeasureText("Hips : x", 12)
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = (%v, %v), want positive", w, h)
	}

	c.DrawText(curveviz.R(0, 0, 120, 20), "Hips : x", 12, curveviz.White, curveviz.AlignCenter)
	inked := false
	for _, v := range c.Pixels() {
		if v != 0 {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("DrawText left the canvas blank")
	}
}

func TestCanvasMaterials(t *testing.T) {
	c := NewCanvas(1, 1)
	m := c.NewMaterial()
	if c.LiveMaterials() != 1 {
		t.Errorf("LiveMaterials() = %d, want 1", c.LiveMaterials())
	}
	m.Release()
	m.Release()
	if c.LiveMaterials() != 0 {
		t.Errorf("LiveMaterials() = %d, want 0", c.LiveMaterials())
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(8, 4, WithBackground(curveviz.White))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 8x4", b)
	}

	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}
