package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var envPathCmd = &cobra.Command{
	Use:    "test",
	Short:  "Print the absolute path of the isolated environment",
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer func() { err = a.finish(err) }()

		fmt.Fprintln(cmd.OutOrStdout(), a.paths.Env())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envPathCmd)
}
