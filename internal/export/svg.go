package export

import (
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/san-kum/arcview/internal/viz"
)

// SVG is a viz.Surface that accumulates SVG elements.
type SVG struct {
	width, height int
	sb            strings.Builder
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) FillRect(r viz.Rect, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, r.X, r.Y, r.W, r.H, hex(c)))
}

func (s *SVG) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
`, x0, y0, x1, y1, hex(c), width))
}

func (s *SVG) Text(x, y, size float64, str string, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>
`, x, y, size, hex(c), html.EscapeString(str)))
}

// String returns the complete SVG document.
func (s *SVG) String() string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
`, s.width, s.height, s.width, s.height))
	out.WriteString(s.sb.String())
	out.WriteString("</svg>\n")
	return out.String()
}

// FigureToSVG draws a figure at the given panel size.
func FigureToSVG(fig viz.Figure, panel int) (string, error) {
	w, h := viz.FigureSize(fig, panel)
	s := NewSVG(w, h)
	if err := viz.DrawFigure(s, fig, float64(w), float64(h)); err != nil {
		return "", err
	}
	return s.String(), nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
