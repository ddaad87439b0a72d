package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

type stopMsg struct{}

// spinnerModel shows a spinner next to the step description and renders
// nothing once stopped, so the line disappears when the step ends.
type spinnerModel struct {
	spinner spinner.Model
	desc    string
	stopped bool
}

func newSpinnerModel(desc string) spinnerModel {
	return spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		desc:    desc,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		m.stopped = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.stopped {
		return ""
	}
	return m.spinner.View() + " " + m.desc + "\n"
}

// Spinner is a progress.Observer showing a transient spinner for each step.
// It does nothing when its output is not a terminal.
type Spinner struct {
	out     io.Writer
	enabled bool

	mu   sync.Mutex
	prog *tea.Program
	done chan struct{}
}

// NewSpinner returns a Spinner drawing on f when f is a terminal.
func NewSpinner(f *os.File) *Spinner {
	fd := f.Fd()
	return &Spinner{
		out:     f,
		enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// StepStart starts the spinner for desc, replacing any running one.
func (s *Spinner) StepStart(desc string) {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	p := tea.NewProgram(newSpinnerModel(desc),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	s.prog, s.done = p, done
}

// StepEnd stops the spinner and waits for its line to be cleared.
func (s *Spinner) StepEnd(string, error) {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Spinner) stopLocked() {
	if s.prog == nil {
		return
	}
	s.prog.Send(stopMsg{})
	<-s.done
	s.prog, s.done = nil, nil
}
