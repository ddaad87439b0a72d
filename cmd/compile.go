package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/lockfile"
	"github.com/papapumpkin/ndm/internal/project"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile requirements.txt from the pyproject.toml dependencies",
	Args:  cobra.NoArgs,
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().Bool("dev", false, "include the dev optional-dependencies group")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	dev, _ := cmd.Flags().GetBool("dev")
	if _, err := a.loadManifest(); err != nil {
		return err
	}
	if err := a.compiler().Compile(cmd.Context(), dev); err != nil {
		return err
	}
	a.reportLock()
	return nil
}

// reportLock prints how many packages the fresh lock file pins.
func (a *app) reportLock() {
	pins, err := lockfile.Load(a.paths.Lock())
	if err != nil {
		a.printer.Info("compiled %s", project.LockName)
		return
	}
	a.printer.Success("locked %d package(s) in %s", len(pins), project.LockName)
}
