// Run command: the bootstrap decision procedure followed by the payload
// launch.
package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pylaunch/internal/pyenv"
)

var runCmd = &cobra.Command{
	Use:   "run <script> [args...]",
	Short: "Run a Python script inside its bootstrapped environment",
	Long: `Run bootstraps the isolated environment for a script and hands the
process off to the environment's interpreter with the identical
argument list. When the current environment already satisfies the
required imports the script runs in place with no environment work at
all.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	// The payload owns everything after the script path, including
	// flag-shaped arguments.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	b, ictx, j, err := newLauncher(cmd, args[0], args[1:])
	if err != nil {
		return err
	}
	defer j.Close()

	outcome, err := b.Bootstrap(ictx)
	if err != nil {
		return err
	}

	// On the replace platform Bootstrap does not return from a
	// successful handoff; a returned outcome means the payload still
	// has to be launched from this process.
	switch outcome {
	case pyenv.OutcomeSatisfied:
		python, err := pyenv.FindInterpreter(runtime.GOOS)
		if err != nil {
			return err
		}
		return launchPayload(b, python, ictx)
	case pyenv.OutcomeRepaired:
		return launchPayload(b, b.Locate(ictx.Root).Python, ictx)
	}
	return nil
}

// launchPayload transfers execution to the payload script under the
// given interpreter. The marker rides along so a payload that invokes
// pylaunch again cannot start a second bootstrap loop.
func launchPayload(b *pyenv.Bootstrapper, python string, ictx pyenv.InvocationContext) error {
	return b.Strategy.Launch(python, ictx.Argv(), pyenv.MarkerEnviron(os.Environ()))
}
