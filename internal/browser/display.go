package browser

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/viz"
	"go.uber.org/zap"
)

var instructions = []string{
	"PLEASE KEEP CLOSING THE FIGURE WINDOWS SO THE PROGRAM KEEPS GOING FORWARD",
	"The selected ARC examples and their solutions are drawn in figure windows, not in this terminal.",
	"Then the test example is shown for you to figure out. When you close it, it is shown again with the solution.",
	"",
	"This terminal then lists the rows of each grid just shown, starting from the top of the grid.",
	`"Input Grid" means the example and "Output Grid" means the solution to the example.`,
	`"Train" means the examples to train you, and "Test" means the example for you to try out.`,
}

// Display prints a record and shows its figures in order: every training pair,
// then the first test input alone, then the first test pair. Each Show call
// blocks until the figure is dismissed. Test pairs after the first are ignored.
func (b *Browser) Display(rec arc.Record, idx int) error {
	fmt.Fprintf(b.out, "\nPROBLEM NUMBER %d\n", idx)
	b.printInstructions()
	fmt.Fprintf(b.out, "raw data for \"example\" parameter: %s\n\n", rec.Compact())

	if !rec.IsMapping() {
		b.logger.Warn("record is not a keyed mapping, nothing to draw",
			zap.Int("index", idx), zap.String("file", rec.Name))
		return nil
	}
	task, err := rec.Task()
	if err != nil {
		return err
	}

	if task.HasTrain {
		for i, p := range task.Train {
			n := i + 1
			if err := b.printPair(p,
				fmt.Sprintf("PROBLEM %d: Training (i.e. example) Input Grid #%d", idx, n),
				fmt.Sprintf("PROBLEM %d: Training (i.e., example solution) Output Grid #%d", idx, n)); err != nil {
				return err
			}
			fig := viz.Figure{
				Title: fmt.Sprintf("Problem %d: Training Example #%d", idx, n),
				Panels: []viz.Panel{
					{Title: fmt.Sprintf("Training Example #%d", n), Grid: p.Input},
					{Title: fmt.Sprintf("Solution #%d", n), Grid: p.Output},
				},
			}
			if err := b.show(fig); err != nil {
				return err
			}
		}
	}

	if task.HasTest && len(task.Test) > 0 {
		first := task.Test[0]
		if err := b.printPair(first,
			fmt.Sprintf("PROBLEM %d:Test Input Grid #1", idx),
			fmt.Sprintf("PROBLEM %d:Test Output Grid #1", idx)); err != nil {
			return err
		}

		challenge := viz.Panel{Title: "Solve This (Test Example #1)", Grid: first.Input}
		if err := b.show(viz.Figure{
			Title:  fmt.Sprintf("Problem %d: Test Example #1", idx),
			Panels: []viz.Panel{challenge},
		}); err != nil {
			return err
		}
		if err := b.show(viz.Figure{
			Title: fmt.Sprintf("Problem %d: Test Example #1 Solution", idx),
			Panels: []viz.Panel{
				challenge,
				{Title: "The Solution (Test Example #1)", Grid: first.Output},
			},
		}); err != nil {
			return err
		}
		if len(task.Test) > 1 {
			b.logger.Debug("ignoring extra test pairs", zap.Int("index", idx), zap.Int("extra", len(task.Test)-1))
		}
	}
	return nil
}

func (b *Browser) printPair(p arc.Pair, inTitle, outTitle string) error {
	if err := viz.PrintGrid(b.out, p.Input, inTitle, b.text); err != nil {
		return err
	}
	return viz.PrintGrid(b.out, p.Output, outTitle, b.text)
}

func (b *Browser) show(fig viz.Figure) error {
	b.logger.Debug("showing figure", zap.String("title", fig.Title), zap.Int("panels", len(fig.Panels)))
	return b.shower.Show(fig)
}

func (b *Browser) printInstructions() {
	legend := fmt.Sprintf("color values: %s", arc.Legend())
	if b.markdown {
		md := "## How to read this\n\n"
		for _, line := range instructions {
			if line == "" {
				md += "\n"
				continue
			}
			md += "- " + line + "\n"
		}
		md += "\n`" + legend + "`\n"
		if rendered, err := glamour.Render(md, "dark"); err == nil {
			fmt.Fprint(b.out, rendered)
			return
		}
	}
	for _, line := range instructions {
		fmt.Fprintln(b.out, line)
	}
	fmt.Fprintln(b.out, legend)
	fmt.Fprintln(b.out)
}
