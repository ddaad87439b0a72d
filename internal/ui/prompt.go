package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

var promptErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// Prompter asks the user for values. On a terminal it uses a bubbletea text
// input; otherwise it reads one line per question from in.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	reader      *bufio.Reader
}

// NewPrompter returns a Prompter reading from in, interactive when in is a
// terminal.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	fd := in.Fd()
	return &Prompter{
		in:          in,
		out:         out,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewLinePrompter returns a non-interactive Prompter over arbitrary streams.
func NewLinePrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask prompts for a non-empty value.
func (p *Prompter) Ask(title string) (string, error) {
	if p.interactive {
		return p.askInteractive(title)
	}
	return p.askLine(title)
}

func (p *Prompter) askLine(title string) (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}
	for {
		fmt.Fprintf(p.out, "%s: ", title)
		line, err := p.reader.ReadString('\n')
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("reading %s: %w", strings.ToLower(title), io.ErrUnexpectedEOF)
			}
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(title), err)
		}
	}
}

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if strings.TrimSpace(m.textInput.Value()) == "" {
				m.errMsg = "a value is required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(promptErrStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

func (p *Prompter) askInteractive(title string) (string, error) {
	ti := textinput.New()
	ti.Focus()

	result, err := tea.NewProgram(inputModel{textInput: ti, title: title},
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(rm.textInput.Value()), nil
}
