// Install command: force a dependency install into the script's
// environment.
package main

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <script>",
	Short: "Install the dependency set regardless of verification state",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	b, ictx, j, err := newLauncher(cmd, args[0], nil)
	if err != nil {
		return err
	}
	defer j.Close()

	return b.ForceInstall(ictx)
}
