package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/manifest"
	"github.com/papapumpkin/ndm/internal/project"
	"github.com/papapumpkin/ndm/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an initial pyproject.toml in the project root",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("name", "", "project name (prompted when omitted)")
	initCmd.Flags().String("python", "", "Python version requirement (prompted when omitted)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	// Checked before prompting so the user is not asked for values that
	// would be thrown away.
	if manifest.Exists(a.paths.Manifest()) {
		a.printer.Error(manifest.ErrExists.Error())
		return nil
	}

	params, err := initParams(cmd)
	if err != nil {
		return err
	}
	if _, err := manifest.Init(a.paths.Manifest(), params); err != nil {
		if errors.Is(err, manifest.ErrExists) {
			a.printer.Error(err.Error())
			return nil
		}
		return err
	}
	a.printer.Success("created %s", project.ManifestName)
	return nil
}

// initParams takes values from flags and prompts for the rest.
func initParams(cmd *cobra.Command) (manifest.Params, error) {
	name, _ := cmd.Flags().GetString("name")
	python, _ := cmd.Flags().GetString("python")

	var prompter *ui.Prompter
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		prompter = ui.NewPrompter(f, cmd.OutOrStdout())
	} else {
		prompter = ui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	var err error
	if name == "" {
		if name, err = prompter.Ask("Project name"); err != nil {
			return manifest.Params{}, err
		}
	}
	if python == "" {
		if python, err = prompter.Ask("Python version requirement"); err != nil {
			return manifest.Params{}, err
		}
	}
	return manifest.Params{Name: name, RequiresPython: python}, nil
}
