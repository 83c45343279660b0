// Package main provides the pylaunch CLI, a self-bootstrapping launcher
// for Python scripts: it makes sure an isolated, dependency-satisfied
// virtual environment exists next to the script and hands the process
// off to that environment's interpreter.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/pylaunch/internal/pyenv"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var instErr *pyenv.InstallError
		if errors.As(err, &instErr) {
			fmt.Fprintln(os.Stderr, "[bootstrap] error: failed to install dependencies.")
			os.Exit(instErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
