package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/arcview/internal/arc"
)

// TextOptions controls console grid output.
type TextOptions struct {
	// Color appends a palette swatch after each literal row.
	Color bool
}

// PrintGrid writes the title with the grid dimensions, then every row as a
// literal sequence, top row first, followed by a blank line.
func PrintGrid(w io.Writer, grid arc.Grid, title string, opts TextOptions) error {
	if len(grid) == 0 {
		return fmt.Errorf("%s: %w", title, arc.ErrEmptyGrid)
	}
	rows, cols := grid.Dims()
	fmt.Fprintf(w, "%s (Grid %dx%d):\n", title, rows, cols)
	for _, row := range grid {
		line := arc.FormatRow(row)
		if opts.Color {
			line += "  " + Swatch(row)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	return nil
}

// Swatch renders a row as colored blocks, two columns per cell.
func Swatch(row []int) string {
	var b strings.Builder
	for _, v := range row {
		b.WriteString(cellBlock(v))
	}
	return b.String()
}

// GridBlock renders a whole grid as colored blocks, one line per row.
func GridBlock(grid arc.Grid) string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = Swatch(row)
	}
	return strings.Join(lines, "\n")
}

func cellBlock(v int) string {
	c, err := arc.Lookup(v)
	if err != nil {
		return ErrorText.Render("??")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}
