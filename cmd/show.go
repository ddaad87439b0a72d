package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/ndm/internal/lockfile"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the packages pinned in requirements.txt",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("hashes", false, "print the hashes of each pin")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) (err error) {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer func() { err = a.finish(err) }()

	withHashes, _ := cmd.Flags().GetBool("hashes")
	pins, err := lockfile.Load(a.paths.Lock())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range pins {
		fmt.Fprintln(out, p.String())
		if withHashes {
			for _, h := range p.Hashes {
				fmt.Fprintf(out, "    %s\n", h)
			}
		}
	}
	return nil
}
