// Root command for the pylaunch CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pylaunch/internal/paths"
	"github.com/mesh-intelligence/pylaunch/pkg/pylaunch"
	"github.com/mesh-intelligence/pylaunch/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var flagConfigDir string

// launcherConfig holds the effective launcher configuration. Set by
// PersistentPreRunE so every subcommand sees the same view.
var launcherConfig types.Config

var rootCmd = &cobra.Command{
	Use:     "pylaunch",
	Short:   "pylaunch runs Python scripts inside self-bootstrapped environments",
	Version: pylaunch.Version,
	Long: `pylaunch ensures a script executes inside an isolated virtual
environment with its dependencies installed, creating the environment
and installing packages on demand, then hands the process off to the
environment's interpreter.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfg := buildLauncherConfig(v)
		if err := cfg.Validate(); err != nil {
			return err
		}
		launcherConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ensureCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(statusCmd)
}
