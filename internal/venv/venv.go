// Package venv provisions the project's isolated environment.
package venv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/papapumpkin/ndm/internal/progress"
	"github.com/papapumpkin/ndm/internal/project"
	"github.com/papapumpkin/ndm/internal/runner"
)

// StepCreate is the observer description of environment creation.
const StepCreate = "Creating virtual environment..."

// Provisioner creates the environment with `python -m venv`, which also
// bootstraps pip inside it.
type Provisioner struct {
	Invoker  runner.Invoker
	Paths    project.Paths
	Python   string // interpreter used to build the environment
	Observer progress.Observer
}

// Args builds the interpreter arguments that create the environment.
func Args() []string {
	return []string{"-m", "venv", "--prompt", project.EnvName, project.EnvName}
}

// Exists reports whether the environment directory is present.
func (p *Provisioner) Exists() (bool, error) {
	_, err := os.Stat(p.Paths.Env())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", p.Paths.Env(), err)
}

// Ensure creates the environment unless its directory already exists. An
// existing directory is reused as-is.
func (p *Provisioner) Ensure(ctx context.Context) (bool, error) {
	exists, err := p.Exists()
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	cmd := runner.Command{Path: p.Python, Args: Args(), Dir: p.Paths.Root}
	err = progress.Step(p.Observer, StepCreate, func() error {
		if _, err := p.Invoker.Run(ctx, cmd); err != nil {
			return fmt.Errorf("creating %s: %w", project.EnvName, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
