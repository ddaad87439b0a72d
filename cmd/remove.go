package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/manifest"
)

var removeCmd = &cobra.Command{
	Use:   "remove <package_name>",
	Short: "Remove a package from pyproject.toml",
	Long: "Remove the first dependency specifier containing <package_name>. With --exact " +
		"the specifier's normalized distribution name must equal <package_name>.",
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().Bool("dev", false, "remove from the dev optional-dependencies group")
	removeCmd.Flags().Bool("exact", false, "match the distribution name exactly instead of by substring")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	dev, _ := cmd.Flags().GetBool("dev")
	mode := manifest.MatchLoose
	exact := a.cfg.ExactRemove
	if cmd.Flags().Changed("exact") {
		exact, _ = cmd.Flags().GetBool("exact")
	}
	if exact {
		mode = manifest.MatchExact
	}

	doc, err := a.loadManifest()
	if err != nil {
		return err
	}
	if err := manifest.RemoveDependency(doc, args[0], dev, mode); err != nil {
		if errors.Is(err, manifest.ErrPackageNotFound) {
			a.printer.Error(manifest.ErrPackageNotFound.Error())
			return nil
		}
		return err
	}
	if err := manifest.Save(a.paths.Manifest(), doc); err != nil {
		return err
	}
	a.printer.Success("removed %s", args[0])
	return nil
}
