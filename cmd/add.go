package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/manifest"
)

var addCmd = &cobra.Command{
	Use:   "add <package_names...>",
	Short: "Add packages to pyproject.toml",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Bool("dev", false, "add to the dev optional-dependencies group")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	dev, _ := cmd.Flags().GetBool("dev")
	doc, err := a.loadManifest()
	if err != nil {
		return err
	}
	manifest.AddDependencies(doc, args, dev)
	if err := manifest.Save(a.paths.Manifest(), doc); err != nil {
		return err
	}
	a.printer.Success("added %s", strings.Join(args, ", "))
	return nil
}
