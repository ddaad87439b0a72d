// Package runner runs the external tools ndm delegates to: the lock
// compiler, the synchronizer, the installer and the environment builder.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
}

// String renders the command line for traces and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Result is what a finished process produced.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Invoker runs Commands. Exec is the real implementation; tests substitute
// a scripted one.
type Invoker interface {
	Run(ctx context.Context, c Command) (Result, error)
}

// ExitError reports a tool that could not be started or exited non-zero.
// Its message carries the tool's own diagnostic output.
type ExitError struct {
	Command  Command
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Error reports the exit status followed by the tool's output.
func (e *ExitError) Error() string {
	var b strings.Builder
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, "%s exited with status %d", e.Command.Path, e.ExitCode)
	} else {
		fmt.Fprintf(&b, "%s failed: %v", e.Command.Path, e.Err)
	}
	out := strings.TrimSpace(e.Stderr)
	if out == "" {
		out = strings.TrimSpace(e.Stdout)
	}
	if out != "" {
		b.WriteString("\n")
		b.WriteString(out)
	}
	return b.String()
}

// Unwrap returns the underlying process error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exec runs commands as child processes and captures their output.
type Exec struct {
	Verbose bool
	// Trace receives verbose command traces. Defaults to os.Stderr.
	Trace io.Writer
}

// Run blocks until the process exits.
func (x *Exec) Run(ctx context.Context, c Command) (Result, error) {
	if x.Verbose {
		trace := x.Trace
		if trace == nil {
			trace = os.Stderr
		}
		fmt.Fprintf(trace, "[ndm] running: %s\n", c)
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if err != nil {
		exitErr := &ExitError{
			Command:  c,
			ExitCode: -1,
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
			Err:      err,
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exitErr.ExitCode = ee.ExitCode()
		}
		return res, exitErr
	}
	return res, nil
}
