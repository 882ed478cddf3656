package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner shows progress for one long-running step.
type Spinner interface {
	Start(msg string)
	Stop(msg string)
	Fail(msg string)
}

// NewSpinner returns an animated spinner on a terminal and a line-based one
// everywhere else.
func (c *Console) NewSpinner() Spinner {
	if c.interactive {
		return &teaSpinner{c: c}
	}
	return &lineSpinner{c: c}
}

// ─── animated ──────────────────────────────────────────────────────

type stopMsg struct{ line string }

type spinnerModel struct {
	spinner spinner.Model
	message string
	final   string
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		m.done = true
		m.final = msg.line
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return m.final + "\n"
	}
	return m.spinner.View() + "  " + m.message
}

type teaSpinner struct {
	c       *Console
	program *tea.Program
	done    chan struct{}
}

func (s *teaSpinner) Start(msg string) {
	m := spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.c.spinner),
		),
		message: msg,
	}
	s.program = tea.NewProgram(m,
		tea.WithOutput(s.c.w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		_, _ = s.program.Run()
	}()
}

func (s *teaSpinner) Stop(msg string) {
	s.finish(fmt.Sprintf("%s  %s", s.c.green.Render(stepDone), msg))
}

func (s *teaSpinner) Fail(msg string) {
	s.finish(fmt.Sprintf("%s  %s", s.c.red.Render(stepFail), s.c.red.Render(msg)))
}

func (s *teaSpinner) finish(line string) {
	if s.program == nil {
		fmt.Fprintln(s.c.w, line)
		return
	}
	s.program.Send(stopMsg{line: line})
	<-s.done
	s.program = nil
}

// ─── plain ─────────────────────────────────────────────────────────

// lineSpinner prints one line on start and one on stop.
type lineSpinner struct {
	c *Console
}

func (s *lineSpinner) Start(msg string) {
	fmt.Fprintf(s.c.w, "%s  %s...\n", s.c.spinner.Render(stepWait), msg)
}

func (s *lineSpinner) Stop(msg string) {
	fmt.Fprintf(s.c.w, "%s  %s\n", s.c.green.Render(stepDone), msg)
}

func (s *lineSpinner) Fail(msg string) {
	fmt.Fprintf(s.c.w, "%s  %s\n", s.c.red.Render(stepFail), s.c.red.Render(msg))
}
