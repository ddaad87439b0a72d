package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestCommandString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"no args", Command{Path: "pip"}, "pip"},
		{"args", Command{Path: "pip", Args: []string{"install", "-r", "requirements.txt"}}, "pip install -r requirements.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Message(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *ExitError
		want []string
	}{
		{
			name: "stderr preferred",
			err:  &ExitError{Command: Command{Path: "pip-compile"}, ExitCode: 2, Stdout: "out", Stderr: "resolution failed\n"},
			want: []string{"pip-compile exited with status 2", "resolution failed"},
		},
		{
			name: "stdout fallback",
			err:  &ExitError{Command: Command{Path: "pip"}, ExitCode: 1, Stdout: "no matching distribution"},
			want: []string{"pip exited with status 1", "no matching distribution"},
		},
		{
			name: "not started",
			err:  &ExitError{Command: Command{Path: "pip-sync"}, ExitCode: -1, Err: exec.ErrNotFound},
			want: []string{"pip-sync failed", "executable file not found"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, w := range tt.want {
				if !strings.Contains(msg, w) {
					t.Errorf("Error() = %q, missing %q", msg, w)
				}
			}
		})
	}
}

func TestExec_Success(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	var trace bytes.Buffer
	x := &Exec{Verbose: true, Trace: &trace}

	res, err := x.Run(context.Background(), Command{Path: "sh", Args: []string{"-c", "echo hello"}, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello")
	}
	if !strings.Contains(trace.String(), "[ndm] running: sh -c echo hello") {
		t.Errorf("trace = %q", trace.String())
	}
}

func TestExec_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	x := &Exec{}

	_, err := x.Run(context.Background(), Command{Path: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}})
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("Run() error = %v, want *ExitError", err)
	}
	if ee.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", ee.ExitCode)
	}
	if !strings.Contains(ee.Error(), "boom") {
		t.Errorf("Error() = %q, want tool stderr", ee.Error())
	}
}

func TestExec_MissingBinary(t *testing.T) {
	t.Parallel()
	x := &Exec{}
	_, err := x.Run(context.Background(), Command{Path: "ndm-definitely-not-a-binary"})
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("Run() error = %v, want *ExitError", err)
	}
	if ee.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", ee.ExitCode)
	}
}
