package viz

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/san-kum/arcview/internal/arc"
)

// Layout in pixels.
const (
	titleHeight   = 28.0
	tickGutter    = 22.0
	panelPad      = 10.0
	titleFontSize = 16.0
	maxTickFont   = 12.0
	minTickFont   = 7.0
	gridLineWidth = 2.0
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Ink   = color.RGBA{20, 20, 20, 255}
)

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Surface is anything a figure can be drawn onto. Text is centered on (x, y).
type Surface interface {
	FillRect(r Rect, c color.RGBA)
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
	Text(x, y, size float64, s string, c color.RGBA)
}

// Panel is one titled grid inside a figure.
type Panel struct {
	Title string
	Grid  arc.Grid
}

// Figure is a row of panels shown together.
type Figure struct {
	Title  string
	Panels []Panel
}

// FigureSize returns the pixel size of a figure given the size of one panel.
func FigureSize(fig Figure, panel int) (w, h int) {
	n := len(fig.Panels)
	if n == 0 {
		n = 1
	}
	return panel * n, panel
}

// Layout splits a w x h canvas into one rectangle per panel, left to right.
func Layout(fig Figure, w, h float64) []Rect {
	n := len(fig.Panels)
	if n == 0 {
		return nil
	}
	pw := w / float64(n)
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{X: float64(i) * pw, Y: 0, W: pw, H: h}
	}
	return rects
}

// ValidateFigure checks every panel grid before anything is drawn.
func ValidateFigure(fig Figure) error {
	for _, p := range fig.Panels {
		if err := p.Grid.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.Title, err)
		}
	}
	return nil
}

// DrawFigure paints the background and every panel. Nothing is drawn when a
// panel holds an invalid grid.
func DrawFigure(s Surface, fig Figure, w, h float64) error {
	if err := ValidateFigure(fig); err != nil {
		return err
	}
	s.FillRect(Rect{W: w, H: h}, White)
	for i, r := range Layout(fig, w, h) {
		if err := PlotGrid(s, r, fig.Panels[i].Grid, fig.Panels[i].Title); err != nil {
			return err
		}
	}
	return nil
}

// PlotGrid draws grid inside r: one flat palette color per cell with row 0 at
// the top, 1-based tick labels on the top and left edges, and white lines on
// every cell boundary including the outer border.
func PlotGrid(s Surface, r Rect, grid arc.Grid, title string) error {
	if err := grid.Validate(); err != nil {
		return err
	}

	rows, cols := len(grid), widest(grid)
	if cols == 0 {
		return arc.ErrEmptyGrid
	}

	s.Text(r.X+r.W/2, r.Y+titleHeight/2, titleFontSize, title, Ink)

	areaX := r.X + tickGutter + panelPad
	areaY := r.Y + titleHeight + tickGutter
	areaW := r.W - tickGutter - 2*panelPad
	areaH := r.H - titleHeight - tickGutter - panelPad

	cell := math.Min(areaW/float64(cols), areaH/float64(rows))
	if cell <= 0 {
		return nil
	}
	gw, gh := cell*float64(cols), cell*float64(rows)
	ox := areaX + (areaW-gw)/2
	oy := areaY + (areaH-gh)/2

	for y, row := range grid {
		for x, v := range row {
			c, err := arc.Lookup(v)
			if err != nil {
				return err
			}
			s.FillRect(Rect{X: ox + float64(x)*cell, Y: oy + float64(y)*cell, W: cell, H: cell}, c.RGBA)
		}
	}

	for x := 0; x <= cols; x++ {
		lx := ox + float64(x)*cell
		s.Line(lx, oy, lx, oy+gh, gridLineWidth, White)
	}
	for y := 0; y <= rows; y++ {
		ly := oy + float64(y)*cell
		s.Line(ox, ly, ox+gw, ly, gridLineWidth, White)
	}

	font := math.Max(minTickFont, math.Min(maxTickFont, cell*0.6))
	for x := 0; x < cols; x++ {
		s.Text(ox+(float64(x)+0.5)*cell, oy-tickGutter/2, font, strconv.Itoa(x+1), Ink)
	}
	for y := 0; y < rows; y++ {
		s.Text(ox-tickGutter/2, oy+(float64(y)+0.5)*cell, font, strconv.Itoa(y+1), Ink)
	}
	return nil
}

func widest(g arc.Grid) int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}
