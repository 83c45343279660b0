// Version command for the pylaunch CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pylaunch/pkg/pylaunch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pylaunch version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pylaunch", pylaunch.Version)
	},
}
