package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/pipeline"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install packages from requirements.txt",
	Long: "Compile requirements.txt, create ./venv unless --no-venv, and pip install from it. " +
		"With --syn the install is followed by a pip-sync that removes unlisted packages.",
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().Bool("dev", false, "include the dev optional-dependencies group")
	installCmd.Flags().Bool("syn", false, "synchronize the environment after installing")
	installCmd.Flags().Bool("venv", true, "target the isolated ./venv environment")
	installCmd.Flags().Bool("no-venv", false, "target the ambient environment")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	dev, _ := cmd.Flags().GetBool("dev")
	syn, _ := cmd.Flags().GetBool("syn")
	opts := pipeline.InstallOptions{
		Dev:    dev,
		Sync:   syn,
		UseEnv: toggle(cmd, "venv"),
	}
	if _, err := a.loadManifest(); err != nil {
		return err
	}
	if err := a.orchestrator().Install(cmd.Context(), opts); err != nil {
		return err
	}
	a.printer.Success("packages installed")
	return nil
}
