package browser

import (
	"fmt"
	"io"

	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/viz"
)

type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) Prompt(msg string) (string, error) {
	p.asked = append(p.asked, msg)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

type recordingShower struct {
	figures []viz.Figure
	err     error
}

func (s *recordingShower) Show(fig viz.Figure) error {
	if err := viz.ValidateFigure(fig); err != nil {
		return err
	}
	s.figures = append(s.figures, fig)
	return s.err
}

func (s *recordingShower) titles() []string {
	out := make([]string, len(s.figures))
	for i, f := range s.figures {
		out[i] = f.Title
	}
	return out
}

const taskJSON = `{
  "train": [
    {"input": [[0, 1], [2, 3]], "output": [[3, 2], [1, 0]]},
    {"input": [[4]], "output": [[5]]}
  ],
  "test": [
    {"input": [[6, 7]], "output": [[7, 6]]},
    {"input": [[8]], "output": [[9]]}
  ]
}`

func mustRecord(name, doc string) arc.Record {
	rec, err := arc.NewRecord(name, []byte(doc))
	if err != nil {
		panic(err)
	}
	return rec
}

func dataset(name string, n int) arc.Dataset {
	ds := arc.Dataset{Name: name}
	for i := 0; i < n; i++ {
		ds.Records = append(ds.Records, mustRecord(fmt.Sprintf("%s-%02d.json", name, i), taskJSON))
	}
	return ds
}
