// Package pipeline composes compile, provisioning and installation into the
// sync and install workflows.
package pipeline

import (
	"context"
	"fmt"

	"github.com/papapumpkin/ndm/internal/progress"
	"github.com/papapumpkin/ndm/internal/project"
	"github.com/papapumpkin/ndm/internal/runner"
)

// Observer descriptions of the installer steps.
const (
	StepSync    = "Synchronizing..."
	StepInstall = "Installing packages..."
)

// LockCompiler regenerates the lock file.
type LockCompiler interface {
	Compile(ctx context.Context, dev bool) error
}

// EnvProvisioner makes sure the isolated environment exists.
type EnvProvisioner interface {
	Ensure(ctx context.Context) (bool, error)
}

// Tools names the ambient executables.
type Tools struct {
	Pip     string
	PipSync string
}

// Orchestrator runs the workflows step by step; each step must finish
// before the next begins and the first failure aborts the workflow.
type Orchestrator struct {
	Compiler    LockCompiler
	Provisioner EnvProvisioner
	Invoker     runner.Invoker
	Paths       project.Paths
	Tools       Tools
	Observer    progress.Observer
}

// SyncOptions selects the optional steps of Sync.
type SyncOptions struct {
	Dev     bool
	Compile bool
	UseEnv  bool
}

// DefaultSyncOptions recompiles and targets the isolated environment.
func DefaultSyncOptions() SyncOptions {
	return SyncOptions{Compile: true, UseEnv: true}
}

// InstallOptions selects the optional steps of Install.
type InstallOptions struct {
	Dev    bool
	Sync   bool
	UseEnv bool
}

// DefaultInstallOptions targets the isolated environment without a
// trailing sync.
func DefaultInstallOptions() InstallOptions {
	return InstallOptions{UseEnv: true}
}

// Sync reconciles the target environment to exactly the lock file.
func (o *Orchestrator) Sync(ctx context.Context, opts SyncOptions) error {
	if opts.Compile {
		if err := o.Compiler.Compile(ctx, opts.Dev); err != nil {
			return err
		}
	}

	args := []string{project.LockName}
	if opts.UseEnv {
		if err := o.ensureEnv(ctx); err != nil {
			return err
		}
		args = []string{"--python-executable", o.Paths.EnvPython(), project.LockName}
	}

	cmd := runner.Command{Path: o.Tools.PipSync, Args: args, Dir: o.Paths.Root}
	return progress.Step(o.Observer, StepSync, func() error {
		if _, err := o.Invoker.Run(ctx, cmd); err != nil {
			return fmt.Errorf("synchronizing environment: %w", err)
		}
		return nil
	})
}

// Install compiles the lock file, installs from it additively and, when
// requested, finishes with a Sync that does not compile again. Steps that
// already succeeded are not rolled back when a later one fails.
func (o *Orchestrator) Install(ctx context.Context, opts InstallOptions) error {
	if err := o.Compiler.Compile(ctx, opts.Dev); err != nil {
		return err
	}

	pip := o.Tools.Pip
	if opts.UseEnv {
		if err := o.ensureEnv(ctx); err != nil {
			return err
		}
		pip = o.Paths.EnvPip()
	}

	cmd := runner.Command{Path: pip, Args: []string{"install", "-r", project.LockName}, Dir: o.Paths.Root}
	err := progress.Step(o.Observer, StepInstall, func() error {
		if _, err := o.Invoker.Run(ctx, cmd); err != nil {
			return fmt.Errorf("installing packages: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if opts.Sync {
		return o.Sync(ctx, SyncOptions{Dev: opts.Dev, Compile: false, UseEnv: opts.UseEnv})
	}
	return nil
}

func (o *Orchestrator) ensureEnv(ctx context.Context) error {
	_, err := o.Provisioner.Ensure(ctx)
	return err
}
