// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/curveviz"
)

// Scanline characters from the top of a cell to the bottom.
var scanlines = [5]rune{'⎺', '⎻', '─', '⎼', '⎽'}

// Block characters for partial cell coverage from the bottom (8 levels).
var blocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// wideTail marks the cell covered by the right half of a wide rune.
const wideTail rune = -1

// Cells is a character-grid overlay target for terminal previews. The
// overlay draws in pixels; each cell covers CellWidth x CellHeight of them.
// Cells implements curveviz.Surface, curveviz.Device and
// curveviz.TextRenderer.
//
// Cells is not safe for concurrent use.
type Cells struct {
	cols, rows   int
	cellW, cellH float64

	runes  []rune
	colors []curveviz.RGBA

	open  bool
	prim  curveviz.Primitive
	color curveviz.RGBA
	verts []canvasVertex

	live int
}

// NewCells creates an empty grid. Non-positive cell sizes become 1.
func NewCells(cols, rows int, cellWidth, cellHeight float64) *Cells {
	cols, rows = max(cols, 0), max(rows, 0)
	g := &Cells{
		cols:   cols,
		rows:   rows,
		cellW:  math.Max(cellWidth, 1),
		cellH:  math.Max(cellHeight, 1),
		runes:  make([]rune, cols*rows),
		colors: make([]curveviz.RGBA, cols*rows),
		color:  curveviz.White,
	}
	g.Clear()
	return g
}

// Size returns the grid size in cells.
func (g *Cells) Size() (cols, rows int) {
	return g.cols, g.rows
}

// PixelSize returns the area the grid covers in overlay pixels.
func (g *Cells) PixelSize() (width, height float64) {
	return float64(g.cols) * g.cellW, float64(g.rows) * g.cellH
}

// Clear blanks every cell.
func (g *Cells) Clear() {
	for i := range g.runes {
		g.runes[i] = ' '
		g.colors[i] = curveviz.Transparent
	}
}

// At returns the rune and color of a cell. Out-of-range cells are blank.
func (g *Cells) At(col, row int) (rune, curveviz.RGBA) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return ' ', curveviz.Transparent
	}
	i := row*g.cols + col
	return g.runes[i], g.colors[i]
}

func (g *Cells) set(col, row int, r rune, c curveviz.RGBA) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	i := row*g.cols + col
	g.runes[i] = r
	g.colors[i] = c.Over(curveviz.Black)
}

// Begin implements curveviz.Surface.
func (g *Cells) Begin(p curveviz.Primitive, _ curveviz.Material) {
	if g.open {
		panic("render: Cells.Begin called before End")
	}
	g.open = true
	g.prim = p
	g.verts = g.verts[:0]
}

// Color implements curveviz.Surface.
func (g *Cells) Color(c curveviz.RGBA) {
	g.color = c
}

// Vertex implements curveviz.Surface.
func (g *Cells) Vertex(x, y float64) {
	if !g.open {
		panic("render: Cells.Vertex called outside Begin/End")
	}
	g.verts = append(g.verts, canvasVertex{x: x, y: y, c: g.color})
}

// End implements curveviz.Surface.
func (g *Cells) End() {
	if !g.open {
		panic("render: Cells.End called without Begin")
	}
	g.open = false

	switch g.prim {
	case curveviz.PrimitiveLineStrip:
		if len(g.verts) == 1 {
			g.plot(g.verts[0].x, g.verts[0].y, g.verts[0].c, false)
		}
		for i := 1; i < len(g.verts); i++ {
			g.segment(g.verts[i-1], g.verts[i])
		}
	case curveviz.PrimitiveQuads:
		for i := 0; i+4 <= len(g.verts); i += 4 {
			g.quad(g.verts[i : i+4])
		}
	}
}

// segment walks from a to b at half-cell steps.
func (g *Cells) segment(a, b canvasVertex) {
	cx := math.Abs(b.x-a.x) / g.cellW
	cy := math.Abs(b.y-a.y) / g.cellH
	vertical := cy > cx
	steps := int(math.Ceil(math.Max(cx, cy)*2)) + 1
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		g.plot(a.x+(b.x-a.x)*t, a.y+(b.y-a.y)*t, a.c.Lerp(b.c, t), vertical)
	}
}

func (g *Cells) plot(x, y float64, c curveviz.RGBA, vertical bool) {
	col := int(math.Floor(x / g.cellW))
	fy := y / g.cellH
	row := int(math.Floor(fy))
	r := '│'
	if !vertical {
		level := int((fy - float64(row)) * float64(len(scanlines)))
		r = scanlines[min(max(level, 0), len(scanlines)-1)]
	}
	g.set(col, row, r, c)
}

// quad fills the cells overlapped by an axis-aligned quad. Partly covered
// cells get a block sized to the covered height.
func (g *Cells) quad(v []canvasVertex) {
	x0, x1 := math.Min(v[0].x, v[2].x), math.Max(v[0].x, v[2].x)
	y0, y1 := math.Min(v[0].y, v[1].y), math.Max(v[0].y, v[1].y)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	c0 := int(math.Floor(x0 / g.cellW))
	c1 := int(math.Ceil(x1/g.cellW)) - 1
	r0 := int(math.Floor(y0 / g.cellH))
	r1 := int(math.Ceil(y1/g.cellH)) - 1

	for row := r0; row <= r1; row++ {
		top := math.Max(y0, float64(row)*g.cellH)
		bottom := math.Min(y1, float64(row+1)*g.cellH)
		level := int(math.Ceil((bottom-top)/g.cellH*float64(len(blocks)))) - 1
		r := blocks[min(max(level, 0), len(blocks)-1)]
		for col := c0; col <= c1; col++ {
			t := 0.0
			if v[2].x != v[0].x {
				center := (float64(col) + 0.5) * g.cellW
				t = math.Max(0, math.Min(1, (center-v[0].x)/(v[2].x-v[0].x)))
			}
			g.set(col, row, r, v[0].c.Lerp(v[2].c, t))
		}
	}
}

// NewMaterial implements curveviz.Device.
func (g *Cells) NewMaterial() curveviz.Material {
	g.live++
	return &cellsMaterial{cells: g}
}

// LiveMaterials returns the number of materials not yet released.
func (g *Cells) LiveMaterials() int {
	return g.live
}

type cellsMaterial struct {
	cells    *Cells
	released bool
}

func (m *cellsMaterial) Release() {
	if !m.released {
		m.released = true
		m.cells.live--
	}
}

// MeasureText implements curveviz.TextRenderer. Size is ignored; every
// glyph is one or two cells.
func (g *Cells) MeasureText(s string, _ float64) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return float64(runewidth.StringWidth(s)) * g.cellW, g.cellH
}

// DrawText implements curveviz.TextRenderer. Text goes on the row holding
// r's vertical center.
func (g *Cells) DrawText(r curveviz.Rect, s string, _ float64, c curveviz.RGBA, align curveviz.Align) {
	row := int(math.Floor(r.Center().Y / g.cellH))
	col := int(math.Floor(r.X / g.cellW))
	if align == curveviz.AlignCenter {
		col += (int(r.Width/g.cellW) - runewidth.StringWidth(s)) / 2
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		g.set(col, row, ch, c)
		if w == 2 {
			g.set(col+1, row, wideTail, c)
		}
		col += w
	}
}

// Plain returns the grid as text without styling.
func (g *Cells) Plain() string {
	var sb strings.Builder
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range g.runes[row*g.cols : (row+1)*g.cols] {
			if r != wideTail {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// String renders the grid with ANSI colors, one styled run per stretch of
// equally colored cells.
func (g *Cells) String() string {
	var sb strings.Builder
	var run strings.Builder
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		base := row * g.cols
		for col := 0; col < g.cols; {
			c := g.colors[base+col]
			run.Reset()
			end := col
			for end < g.cols && g.colors[base+end] == c {
				if r := g.runes[base+end]; r != wideTail {
					run.WriteRune(r)
				}
				end++
			}
			if c.A == 0 {
				sb.WriteString(run.String())
			} else {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.HexRGB()))
				sb.WriteString(style.Render(run.String()))
			}
			col = end
		}
	}
	return sb.String()
}
