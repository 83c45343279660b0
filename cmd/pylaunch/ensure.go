// Ensure command: bring the environment to a dependency-satisfied
// state without running anything.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ensureCmd = &cobra.Command{
	Use:   "ensure <script>",
	Short: "Provision and repair the script's environment without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnsure,
}

func runEnsure(cmd *cobra.Command, args []string) error {
	b, ictx, j, err := newLauncher(cmd, args[0], nil)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := b.Ensure(ictx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "environment ready at %s\n", b.Locate(ictx.Root).Dir)
	return nil
}
