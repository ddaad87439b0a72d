package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/config"
	"github.com/papapumpkin/ndm/internal/lockfile"
	"github.com/papapumpkin/ndm/internal/manifest"
	"github.com/papapumpkin/ndm/internal/pipeline"
	"github.com/papapumpkin/ndm/internal/progress"
	"github.com/papapumpkin/ndm/internal/project"
	"github.com/papapumpkin/ndm/internal/runner"
	"github.com/papapumpkin/ndm/internal/telemetry"
	"github.com/papapumpkin/ndm/internal/ui"
	"github.com/papapumpkin/ndm/internal/venv"
)

// newInvoker builds the process runner. Tests replace it with a fake.
var newInvoker = func(cfg config.Config) runner.Invoker {
	return &runner.Exec{Verbose: cfg.Verbose}
}

// app is the per-invocation wiring shared by all subcommands.
type app struct {
	cfg      config.Config
	paths    project.Paths
	invoker  runner.Invoker
	observer progress.Observer
	printer  *ui.Printer
	events   *telemetry.Emitter
	command  string
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dir, _ := cmd.Flags().GetString("directory")
	if dir == "" {
		dir = "."
	}
	paths, err := project.New(dir)
	if err != nil {
		return nil, err
	}

	var events *telemetry.Emitter
	if cfg.EventLog != "" {
		logPath := cfg.EventLog
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(paths.Root, logPath)
		}
		if events, err = telemetry.NewEmitter(logPath); err != nil {
			return nil, err
		}
	}

	a := &app{
		cfg:     cfg,
		paths:   paths,
		invoker: newInvoker(cfg),
		observer: progress.Multi(
			spinnerFor(cmd.ErrOrStderr()),
			telemetry.StepRecorder{Emitter: events, Command: cmd.Name()},
		),
		printer: ui.New(cmd.OutOrStdout()),
		events:  events,
		command: cmd.Name(),
	}
	_ = events.Emit(telemetry.Event{Kind: telemetry.KindCommandStart, Command: a.command})
	return a, nil
}

// spinnerFor only draws on real files; writers set by tests get none.
func spinnerFor(w io.Writer) progress.Observer {
	if f, ok := w.(*os.File); ok {
		return ui.NewSpinner(f)
	}
	return nil
}

// finish records the command outcome and releases the event log.
func (a *app) finish(err error) error {
	evt := telemetry.Event{Kind: telemetry.KindCommandDone, Command: a.command}
	if err != nil {
		evt.Error = err.Error()
	}
	_ = a.events.Emit(evt)
	if cerr := a.events.Close(); cerr != nil && err == nil {
		return cerr
	}
	return err
}

func (a *app) loadManifest() (*manifest.Document, error) {
	return manifest.Load(a.paths.Manifest())
}

func (a *app) compiler() *lockfile.Compiler {
	return &lockfile.Compiler{
		Invoker:  a.invoker,
		Paths:    a.paths,
		Tool:     a.cfg.PipCompilePath,
		Observer: a.observer,
	}
}

func (a *app) provisioner() *venv.Provisioner {
	return &venv.Provisioner{
		Invoker:  a.invoker,
		Paths:    a.paths,
		Python:   a.cfg.PythonPath,
		Observer: a.observer,
	}
}

func (a *app) orchestrator() *pipeline.Orchestrator {
	return &pipeline.Orchestrator{
		Compiler:    a.compiler(),
		Provisioner: a.provisioner(),
		Invoker:     a.invoker,
		Paths:       a.paths,
		Tools:       pipeline.Tools{Pip: a.cfg.PipPath, PipSync: a.cfg.PipSyncPath},
		Observer:    a.observer,
	}
}

// toggle resolves a --name/--no-name flag pair; --no-name wins.
func toggle(cmd *cobra.Command, name string) bool {
	if off, _ := cmd.Flags().GetBool("no-" + name); off {
		return false
	}
	on, _ := cmd.Flags().GetBool(name)
	return on
}
