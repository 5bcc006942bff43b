package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type benchDoneMsg struct {
	err error
}

type benchProgressMsg struct {
	index int64
}

type benchSpinnerModel struct {
	spinner spinner.Model
	label   string
	current int64
	seen    bool
	run     tea.Cmd
	err     error
	done    bool
}

func newBenchSpinnerModel(label string, run tea.Cmd) benchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return benchSpinnerModel{
		spinner: s,
		label:   label,
		run:     run,
	}
}

func (m benchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m benchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case benchProgressMsg:
		m.current = msg.index
		m.seen = true
		return m, nil
	case benchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m benchSpinnerModel) View() string {
	if m.done {
		return ""
	}
	if !m.seen {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s F(%d)", m.spinner.View(), m.label, m.current)
}

// runBenchSpinner shows a spinner on output while run executes. run receives a
// callback that moves the displayed index forward.
func runBenchSpinner(ctx context.Context, output io.Writer, run func(context.Context, func(int64)) error) error {
	var p *tea.Program

	runCmd := func() tea.Msg {
		return benchDoneMsg{err: run(ctx, func(k int64) {
			p.Send(benchProgressMsg{index: k})
		})}
	}

	p = tea.NewProgram(
		newBenchSpinnerModel("Benchmarking...", runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(benchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
