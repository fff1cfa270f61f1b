package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/arcview/internal/arc"
)

type keyMap struct {
	Next, Prev         key.Binding
	NextPair, PrevPair key.Binding
	Switch, Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.NextPair, k.PrevPair, k.Switch, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Next:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next task")),
	Prev:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev task")),
	NextPair: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next pair")),
	PrevPair: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev pair")),
	Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "dataset")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type labeledPair struct {
	label string
	pair  arc.Pair
}

type model struct {
	datasets      []arc.Dataset
	active        int
	cursors       []int
	pair          int
	keys          keyMap
	help          help.Model
	width, height int
}

// NewInteractiveApp builds the terminal browser over the given datasets.
func NewInteractiveApp(datasets ...arc.Dataset) *model {
	return &model{
		datasets: datasets,
		cursors:  make([]int, len(datasets)),
		keys:     defaultKeys,
		help:     help.New(),
		width:    80, height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case len(m.datasets) == 0:
		return m, nil
	case key.Matches(msg, m.keys.Switch):
		m.active = (m.active + 1) % len(m.datasets)
		m.pair = 0
	case key.Matches(msg, m.keys.Next):
		if m.cursors[m.active] < m.datasets[m.active].Len()-1 {
			m.cursors[m.active]++
			m.pair = 0
		}
	case key.Matches(msg, m.keys.Prev):
		if m.cursors[m.active] > 0 {
			m.cursors[m.active]--
			m.pair = 0
		}
	case key.Matches(msg, m.keys.NextPair):
		if pairs, _ := m.pairs(); m.pair < len(pairs)-1 {
			m.pair++
		}
	case key.Matches(msg, m.keys.PrevPair):
		if m.pair > 0 {
			m.pair--
		}
	}
	return m, nil
}

func (m model) current() (arc.Record, bool) {
	if len(m.datasets) == 0 || m.datasets[m.active].Len() == 0 {
		return arc.Record{}, false
	}
	return m.datasets[m.active].At(m.cursors[m.active]), true
}

// pairs lists the training pairs followed by the test pairs of the current task.
func (m model) pairs() ([]labeledPair, error) {
	rec, ok := m.current()
	if !ok {
		return nil, nil
	}
	task, err := rec.Task()
	if err != nil {
		return nil, err
	}
	out := make([]labeledPair, 0, len(task.Train)+len(task.Test))
	for i, p := range task.Train {
		out = append(out, labeledPair{fmt.Sprintf("Training Example #%d", i+1), p})
	}
	for i, p := range task.Test {
		out = append(out, labeledPair{fmt.Sprintf("Test Example #%d", i+1), p})
	}
	return out, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + GradientText("ARCVIEW", "#00cccc", "#ff88ff") + "  " + Subtle.Render("ARC task browser") + "\n")
	b.WriteString("  " + Separator(40) + "\n\n")

	rec, ok := m.current()
	if !ok {
		b.WriteString("  " + ErrorText.Render("no datasets loaded") + "\n")
		return b.String()
	}

	ds := m.datasets[m.active]
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n\n",
		Selected.Render(ds.Name),
		TitleText.Render(fmt.Sprintf("task %d/%d", m.cursors[m.active], ds.Len()-1)),
		Subtle.Render(rec.Name)))

	pairs, err := m.pairs()
	switch {
	case err != nil:
		b.WriteString("  " + ErrorText.Render(err.Error()) + "\n")
	case len(pairs) == 0:
		b.WriteString("  " + Subtle.Render("task has no pairs") + "\n")
	default:
		lp := pairs[m.pair]
		in := GridPanel.Render(HeaderStyle.Render("Input") + "\n" + GridBlock(lp.pair.Input))
		out := GridPanel.Render(HeaderStyle.Render("Output") + "\n" + GridBlock(lp.pair.Output))
		b.WriteString("  " + TitleText.Render(lp.label) + Subtle.Render(fmt.Sprintf("  (%d/%d)", m.pair+1, len(pairs))) + "\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, in, "  →  ", out) + "\n")
	}

	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

// RunInteractive starts the terminal browser and blocks until the user quits.
func RunInteractive(datasets ...arc.Dataset) error {
	_, err := tea.NewProgram(NewInteractiveApp(datasets...), tea.WithAltScreen()).Run()
	return err
}
