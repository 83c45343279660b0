// Shared wiring for the pylaunch subcommands.
package main

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pylaunch/internal/journal"
	"github.com/mesh-intelligence/pylaunch/internal/pyenv"
)

// newLauncher builds the invocation context, the bootstrap journal, and
// a fully wired Bootstrapper for the given payload command line. The
// journal opens lazily, so wiring it here costs nothing on the fast
// path. Callers own closing the journal.
func newLauncher(cmd *cobra.Command, script string, scriptArgs []string) (*pyenv.Bootstrapper, pyenv.InvocationContext, *journal.Journal, error) {
	ictx, err := pyenv.CurrentInvocation(script, scriptArgs)
	if err != nil {
		return nil, pyenv.InvocationContext{}, nil, err
	}

	desc := pyenv.Locate(ictx.Root, launcherConfig.VenvDirName, runtime.GOOS)
	j := journal.New(filepath.Join(desc.Dir, journal.FileName))

	b := pyenv.NewBootstrapper(launcherConfig, ictx, j, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return b, ictx, j, nil
}
