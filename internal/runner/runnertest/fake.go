// Package runnertest provides a scripted runner.Invoker for tests.
package runnertest

import (
	"context"
	"sync"

	"github.com/papapumpkin/ndm/internal/runner"
)

// Handler simulates one external tool.
type Handler func(c runner.Command) (runner.Result, error)

// Fake records every command and dispatches it to the handler registered
// for its Path. Commands without a handler succeed with an empty result.
type Fake struct {
	mu       sync.Mutex
	handlers map[string]Handler
	calls    []runner.Command
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{handlers: make(map[string]Handler)}
}

// On registers h for commands whose Path is path.
func (f *Fake) On(path string, h Handler) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = h
	return f
}

// Fail makes commands for path exit with code and stderr.
func (f *Fake) Fail(path string, code int, stderr string) *Fake {
	return f.On(path, func(c runner.Command) (runner.Result, error) {
		res := runner.Result{ExitCode: code, Stderr: stderr}
		return res, &runner.ExitError{Command: c, ExitCode: code, Stderr: stderr}
	})
}

// Run implements runner.Invoker.
func (f *Fake) Run(_ context.Context, c runner.Command) (runner.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	h := f.handlers[c.Path]
	f.mu.Unlock()

	if h == nil {
		return runner.Result{}, nil
	}
	return h(c)
}

// Calls returns the recorded commands in order.
func (f *Fake) Calls() []runner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]runner.Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// Paths returns the Path of each recorded command in order.
func (f *Fake) Paths() []string {
	calls := f.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Path
	}
	return out
}
