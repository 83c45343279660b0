//go:build !windows

package pyenv

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// replaceStrategy replaces the current process image with the
// interpreter. The handed-off process inherits this process's identity,
// stdio, and lifetime slot; no supervisory parent remains.
type replaceStrategy struct {
	// execFunc is overridable in tests; defaults to unix.Exec.
	execFunc func(argv0 string, argv []string, envv []string) error
}

func (r *replaceStrategy) Name() string { return "replace" }

func (r *replaceStrategy) Launch(python string, argv []string, environ []string) error {
	execFunc := r.execFunc
	if execFunc == nil {
		execFunc = unix.Exec
	}

	err := execFunc(python, append([]string{python}, argv...), environ)
	// Exec only returns on failure; the process was not replaced.
	return fmt.Errorf("replace process image: %w", err)
}

// PlatformStrategy returns the handoff variant for this platform.
func PlatformStrategy() Strategy {
	return &replaceStrategy{}
}
