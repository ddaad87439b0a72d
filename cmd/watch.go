package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/project"
	"github.com/papapumpkin/ndm/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompile requirements.txt whenever pyproject.toml changes",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Bool("dev", false, "include the dev optional-dependencies group")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	dev, _ := cmd.Flags().GetBool("dev")
	w, err := watch.NewWatcher(a.paths)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	ctx := cmd.Context()
	a.printer.Info("watching %s, press Ctrl-C to stop", project.ManifestName)
	a.recompile(ctx, dev)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			a.recompile(ctx, dev)
		}
	}
}

// recompile reports failures instead of returning them so the watch loop
// survives a manifest that is mid-edit.
func (a *app) recompile(ctx context.Context, dev bool) {
	if _, err := a.loadManifest(); err != nil {
		a.printer.Error(err.Error())
		return
	}
	if err := a.compiler().Compile(ctx, dev); err != nil {
		if ctx.Err() == nil {
			a.printer.Error(err.Error())
		}
		return
	}
	a.reportLock()
}
