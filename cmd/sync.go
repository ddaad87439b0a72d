package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/pipeline"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize an environment with requirements.txt",
	Long: "Recompile requirements.txt (unless --no-comp) and make the target environment " +
		"match it exactly with pip-sync, creating ./venv first unless --no-venv.",
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().Bool("dev", false, "include the dev optional-dependencies group")
	syncCmd.Flags().Bool("comp", true, "compile requirements.txt first")
	syncCmd.Flags().Bool("no-comp", false, "skip compiling requirements.txt")
	syncCmd.Flags().Bool("venv", true, "target the isolated ./venv environment")
	syncCmd.Flags().Bool("no-venv", false, "target the ambient environment")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	dev, _ := cmd.Flags().GetBool("dev")
	opts := pipeline.SyncOptions{
		Dev:     dev,
		Compile: toggle(cmd, "comp"),
		UseEnv:  toggle(cmd, "venv"),
	}
	if opts.Compile {
		if _, err := a.loadManifest(); err != nil {
			return err
		}
	}
	if err := a.orchestrator().Sync(cmd.Context(), opts); err != nil {
		return err
	}
	a.printer.Success("environment synchronized")
	return nil
}
