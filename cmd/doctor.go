package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/runner"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools are available",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	tools := []struct {
		label string
		path  string
	}{
		{"pip", a.cfg.PipPath},
		{"pip-compile", a.cfg.PipCompilePath},
		{"pip-sync", a.cfg.PipSyncPath},
		{"python", a.cfg.PythonPath},
	}

	var missing []string
	for _, tool := range tools {
		res, err := a.invoker.Run(cmd.Context(), runner.Command{Path: tool.path, Args: []string{"--version"}, Dir: a.paths.Root})
		if err != nil {
			a.printer.Error(fmt.Sprintf("%s: %v", tool.label, err))
			missing = append(missing, tool.label)
			continue
		}
		a.printer.Success("%s: %s", tool.label, firstLine(res.Stdout+res.Stderr))
	}
	if len(missing) > 0 {
		return errors.New("missing external tools: " + strings.Join(missing, ", "))
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
