package arc

import (
	"fmt"
	"image/color"
)

// PaletteColor is one entry of the fixed ARC palette.
type PaletteColor struct {
	Name string
	RGBA color.RGBA
}

// Hex returns the color as #rrggbb.
func (c PaletteColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.RGBA.R, c.RGBA.G, c.RGBA.B)
}

// Palette maps cell values 0-9 to colors.
var Palette = [10]PaletteColor{
	{"black", color.RGBA{0, 0, 0, 255}},
	{"blue", color.RGBA{0, 0, 255, 255}},
	{"red", color.RGBA{255, 0, 0, 255}},
	{"green", color.RGBA{0, 128, 0, 255}},
	{"yellow", color.RGBA{255, 255, 0, 255}},
	{"gray", color.RGBA{128, 128, 128, 255}},
	{"pink", color.RGBA{255, 192, 203, 255}},
	{"orange", color.RGBA{255, 165, 0, 255}},
	{"cyan", color.RGBA{0, 255, 255, 255}},
	{"brown", color.RGBA{165, 42, 42, 255}},
}

// Lookup returns the palette entry for a cell value.
func Lookup(v int) (PaletteColor, error) {
	if v < 0 || v >= len(Palette) {
		return PaletteColor{}, fmt.Errorf("%w: %d", ErrColorOutOfRange, v)
	}
	return Palette[v], nil
}

// Legend lists the palette as "black 0, blue 1, ...".
func Legend() string {
	s := ""
	for i, c := range Palette {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s %d", c.Name, i)
	}
	return s
}
