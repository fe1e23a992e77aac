package main

import (
	"flag"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/curveviz"
	"github.com/gogpu/curveviz/render"
	"github.com/gogpu/curveviz/timeline"
)

const (
	// Overlay pixels per terminal cell.
	cellWidth  = 4.0
	cellHeight = 8.0

	// chromeRows are the rows taken by the header and the help line.
	chromeRows = 2

	scrollCells = 8
	zoomStep    = 1.25
)

func runView(args []string) error {
	var c common
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	clip, prefs, err := c.load()
	if err != nil {
		return err
	}

	m := newModel(clip, prefs)
	m.view.Expanded = c.expand

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(model); ok {
		fm.close()
	}
	return err
}

// model is the terminal preview. The overlay and grid are shared between
// model copies.
type model struct {
	clip    *timeline.Clip
	prefs   curveviz.Preferences
	view    *timeline.View
	cells   *render.Cells
	overlay *curveviz.Overlay
	painter *curvePainter

	width, height int
	fitted        bool
	quitting      bool
}

func newModel(clip *timeline.Clip, prefs curveviz.Preferences) model {
	view := timeline.NewView(clip, 0, 0)
	view.LineHeight = 2 * cellHeight
	cells := render.NewCells(0, 0, cellWidth, cellHeight)
	return model{
		clip:  clip,
		prefs: prefs,
		view:  view,
		cells: cells,
		overlay: curveviz.NewOverlay(view,
			curveviz.WithDevice(cells),
			curveviz.WithPreferences(prefs)),
		painter: newCurvePainter(),
	}
}

func (m model) close() {
	m.painter.Dispose()
	m.overlay.Close()
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("curveviz " + m.clip.Name())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		v := m.view
		frame := 1 / m.clip.FrameRate()
		switch msg.String() {
		case "left", "h":
			v.ScrollX -= scrollCells * cellWidth
		case "right", "l":
			v.ScrollX += scrollCells * cellWidth
		case "up", "k":
			v.ScrollY = math.Max(0, v.ScrollY-v.LineHeight)
		case "down", "j":
			v.ScrollY += v.LineHeight
		case ",":
			v.Time = math.Max(0, v.Time-frame)
		case ".":
			v.Time += frame
		case "+", "=":
			v.Zoom(zoomStep, v.Width/2)
		case "-":
			v.Zoom(1/zoomStep, v.Width/2)
		case "f":
			v.Fit(2 * cellWidth)
		case "e":
			v.Expanded = !v.Expanded
		case "tab":
			v.ShowCurves = !v.ShowCurves
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := max(msg.Height-chromeRows, 1)
		m.cells = render.NewCells(msg.Width, rows, cellWidth, cellHeight)
		m.view.Width, m.view.Height = m.cells.PixelSize()
		// Materials belong to the old grid.
		m.overlay.Close()
		m.painter.Dispose()
		m.overlay = curveviz.NewOverlay(m.view,
			curveviz.WithDevice(m.cells),
			curveviz.WithPreferences(m.prefs))
		if !m.fitted {
			m.view.Fit(2 * cellWidth)
			m.fitted = true
		}
		return m, nil
	}
	return m, nil
}

// frame draws the overlay into the grid.
func (m model) frame() curveviz.FrameStats {
	m.cells.Clear()
	if m.view.ShowCurves {
		m.painter.Draw(m.cells, m.cells, m.view, m.prefs.Resolution)
	}
	m.overlay.Draw(m.cells, m.cells)
	drawPlayhead(m.cells, m.cells, m.view)
	return m.overlay.LastFrame()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return statusStyle.Render("loading...")
	}

	stats := m.frame()
	mode := "dope sheet"
	if m.view.ShowCurves {
		mode = "curves"
	}
	header := headerStyle.Render(m.clip.Name()) + "  " + statusStyle.Render(fmt.Sprintf(
		"%s  t=%.3fs  %.0f px/s  %d lines  %d labels",
		mode, m.view.Time, m.view.PixelsPerSecond, stats.Lines, stats.Labels))

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(m.cells.String())
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(helpText(m.view.ShowCurves)))
	return b.String()
}
