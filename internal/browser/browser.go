package browser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/logging"
	"github.com/san-kum/arcview/internal/viz"
	"go.uber.org/zap"
)

// Tokens recognised at the prompts.
const (
	EvaluationToken = "e"
	QuitToken       = "q"
)

// Prompter asks a question and returns the answer line.
type Prompter interface {
	Prompt(msg string) (string, error)
}

// Shower presents a figure and returns once the user has dismissed it.
type Shower interface {
	Show(fig viz.Figure) error
}

type Options struct {
	Out      io.Writer
	Text     viz.TextOptions
	Markdown bool
	Logger   *zap.Logger
}

const (
	stateChooseDataset = iota
	stateChooseIndex
	stateDisplaying
	stateQuit
)

// Browser is the console menu loop over the two preloaded datasets.
type Browser struct {
	training   arc.Dataset
	evaluation arc.Dataset
	prompt     Prompter
	shower     Shower
	out        io.Writer
	text       viz.TextOptions
	markdown   bool
	logger     *zap.Logger

	state   int
	current arc.Dataset
	index   int
}

func New(training, evaluation arc.Dataset, p Prompter, s Shower, opts Options) *Browser {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Browser{
		training:   training,
		evaluation: evaluation,
		prompt:     p,
		shower:     s,
		out:        out,
		text:       opts.Text,
		markdown:   opts.Markdown,
		logger:     logging.OrNop(opts.Logger),
	}
}

// Run loops until the user enters the quit token or input ends. Every pass
// asks for the dataset again. Errors from rendering end the loop.
func (b *Browser) Run() error {
	b.state = stateChooseDataset
	for b.state != stateQuit {
		var err error
		switch b.state {
		case stateChooseDataset:
			err = b.chooseDataset()
		case stateChooseIndex:
			err = b.chooseIndex()
		case stateDisplaying:
			err = b.Display(b.current.At(b.index), b.index)
			b.state = stateChooseDataset
		}
		if errors.Is(err, io.EOF) {
			b.logger.Debug("input closed, leaving browser")
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Browser) chooseDataset() error {
	answer, err := b.prompt.Prompt(fmt.Sprintf("For default training files press ENTER, for evaluation files press '%s' and then ENTER:", EvaluationToken))
	if err != nil {
		return err
	}
	if answer == EvaluationToken {
		b.current = b.evaluation
		fmt.Fprintln(b.out, "The dataset containing the ARC-AGI evaluation files has been chosen.")
	} else {
		b.current = b.training
		fmt.Fprintln(b.out, "The dataset containing the ARC-AGI training files has been chosen.")
	}
	b.logger.Debug("dataset chosen", zap.String("dataset", b.current.Name), zap.Int("records", b.current.Len()))
	b.state = stateChooseIndex
	return nil
}

func (b *Browser) chooseIndex() error {
	last := b.current.Len() - 1
	fmt.Fprintf(b.out, "Loaded %d problems. Please enter the problem number to display (0-%d), or '%s' to quit:\n", b.current.Len(), last, QuitToken)
	answer, err := b.prompt.Prompt("Enter problem number: ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) == QuitToken {
		b.state = stateQuit
		return nil
	}

	b.state = stateChooseDataset
	idx, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		fmt.Fprintln(b.out, "Please enter a valid number.")
		fmt.Fprintln(b.out, "Select again the dataset you want and then the problem number.")
		fmt.Fprintln(b.out)
		return nil
	}
	if idx < 0 || idx > last {
		fmt.Fprintf(b.out, "Invalid problem number selected. Please enter a number between 0 and %d.\n", last)
		fmt.Fprintln(b.out, "Select again the dataset you want and then the problem number.")
		fmt.Fprintln(b.out)
		return nil
	}

	b.index = idx
	b.state = stateDisplaying
	return nil
}
