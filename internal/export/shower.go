package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/san-kum/arcview/internal/logging"
	"github.com/san-kum/arcview/internal/viz"
	"go.uber.org/zap"
)

// Prompter waits for the user to acknowledge a figure.
type Prompter interface {
	Prompt(msg string) (string, error)
}

// DirShower writes each figure as a numbered SVG file. With a prompter set,
// Show returns only after the user presses Enter.
type DirShower struct {
	Dir       string
	PanelSize int
	Prompt    Prompter
	Logger    *zap.Logger

	seq int
}

func (d *DirShower) Show(fig viz.Figure) error {
	doc, err := FigureToSVG(fig, d.PanelSize)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return err
	}

	d.seq++
	path := filepath.Join(d.Dir, fmt.Sprintf("%03d_%s.svg", d.seq, slug(fig.Title)))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return err
	}
	logging.OrNop(d.Logger).Debug("figure written", zap.String("path", path))

	if d.Prompt == nil {
		return nil
	}
	if _, err := d.Prompt.Prompt(fmt.Sprintf("Figure saved to %s. Press ENTER to continue.", path)); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Written returns how many figures have been saved.
func (d *DirShower) Written() int { return d.seq }

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "figure"
	}
	return out
}
