package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/viz"
)

func testFigure() viz.Figure {
	return viz.Figure{
		Title: "Training Example #1",
		Panels: []viz.Panel{
			{Title: "Training Example #1", Grid: arc.Grid{{0, 1}, {2, 3}}},
			{Title: "Solution #1", Grid: arc.Grid{{3, 2}, {1, 0}}},
		},
	}
}

func TestFigureToSVG(t *testing.T) {
	doc, err := FigureToSVG(testFigure(), 200)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.HasPrefix(doc, "<?xml") || !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("expected a complete svg document")
	}
	if !strings.Contains(doc, `width="400" height="200"`) {
		t.Error("expected two 200px panels")
	}
	if !strings.Contains(doc, `fill="#0000ff"`) {
		t.Error("expected blue cell")
	}
	if !strings.Contains(doc, "Solution #1") {
		t.Error("expected panel title")
	}
	// background + 8 cells
	if n := strings.Count(doc, "<rect"); n != 9 {
		t.Errorf("expected 9 rects, got %d", n)
	}
}

func TestFigureToSVG_OutOfRange(t *testing.T) {
	fig := viz.Figure{Panels: []viz.Panel{{Title: "bad", Grid: arc.Grid{{10}}}}}
	if _, err := FigureToSVG(fig, 200); !errors.Is(err, arc.ErrColorOutOfRange) {
		t.Errorf("expected ErrColorOutOfRange, got %v", err)
	}
}

func TestSVGEscapesText(t *testing.T) {
	s := NewSVG(10, 10)
	s.Text(0, 0, 10, "a<b>&c", viz.Ink)
	if !strings.Contains(s.String(), "a&lt;b&gt;&amp;c") {
		t.Error("text must be escaped")
	}
}

type countingPrompter struct{ n int }

func (p *countingPrompter) Prompt(msg string) (string, error) {
	p.n++
	return "", io.EOF
}

func TestDirShower(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	p := &countingPrompter{}
	d := &DirShower{Dir: dir, PanelSize: 100, Prompt: p}

	if err := d.Show(testFigure()); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if err := d.Show(viz.Figure{Title: "Solve This (Test Example #1)", Panels: []viz.Panel{{Grid: arc.Grid{{4}}}}}); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	if d.Written() != 2 || p.n != 2 {
		t.Errorf("expected 2 figures and 2 acknowledgments, got %d/%d", d.Written(), p.n)
	}
	for _, name := range []string{"001_training-example-1.svg", "002_solve-this-test-example-1.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestDirShower_InvalidWritesNothing(t *testing.T) {
	dir := t.TempDir()
	d := &DirShower{Dir: dir, PanelSize: 100}
	if err := d.Show(viz.Figure{Panels: []viz.Panel{{Grid: arc.Grid{{-1}}}}}); err == nil {
		t.Fatal("expected error")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 || d.Written() != 0 {
		t.Error("nothing should be written for an invalid figure")
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Training Example #1":            "training-example-1",
		"The Solution (Test Example #1)": "the-solution-test-example-1",
		"":                               "figure",
		"###":                            "figure",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q): expected %q, got %q", in, want, got)
		}
	}
}
