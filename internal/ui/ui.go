// Package ui renders ndm's terminal output: short styled messages, a
// transient spinner around external steps, and the init prompts.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorLabel   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// Printer writes user-facing messages.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Error prints "Error: msg" with a bold red label.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, "%s: %s\n", errorLabel.Render("Error"), msg)
}

// Success prints a green confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Info prints a dimmed line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Line prints text unstyled.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}
