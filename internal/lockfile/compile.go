package lockfile

import (
	"context"
	"fmt"

	"github.com/papapumpkin/ndm/internal/progress"
	"github.com/papapumpkin/ndm/internal/project"
	"github.com/papapumpkin/ndm/internal/runner"
)

// StepCompile is the observer description of a compile.
const StepCompile = "Compiling requirements.txt..."

// Compiler regenerates the lock file with an external pip-compile.
type Compiler struct {
	Invoker  runner.Invoker
	Paths    project.Paths
	Tool     string // pip-compile executable
	Observer progress.Observer
}

// Args builds the pip-compile arguments. The dev extra is requested first
// so the output and input files stay the trailing arguments.
func Args(dev bool) []string {
	args := []string{"--generate-hashes", "-o", project.LockName, project.ManifestName}
	if dev {
		args = append([]string{"--extra", "dev"}, args...)
	}
	return args
}

// Compile overwrites the lock file. A failing pip-compile is returned as a
// *runner.ExitError carrying its diagnostics.
func (c *Compiler) Compile(ctx context.Context, dev bool) error {
	cmd := runner.Command{
		Path: c.Tool,
		Args: Args(dev),
		Dir:  c.Paths.Root,
	}
	return progress.Step(c.Observer, StepCompile, func() error {
		if _, err := c.Invoker.Run(ctx, cmd); err != nil {
			return fmt.Errorf("compiling %s: %w", project.LockName, err)
		}
		return nil
	})
}
