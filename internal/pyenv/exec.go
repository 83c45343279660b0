package pyenv

import (
	"fmt"
	"os/exec"
)

// pyexec holds the process-spawning functions used by the provisioner,
// verifier, and installer. Overridable in tests.
var pyexec = struct {
	lookPath func(file string) (string, error)
	command  func(name string, args ...string) *exec.Cmd
}{
	lookPath: exec.LookPath,
	command:  exec.Command,
}

// interpreterCandidates are the base interpreter names probed on PATH,
// most specific first.
func interpreterCandidates(goos string) []string {
	if goos == "windows" {
		return []string{"py", "python"}
	}
	return []string{"python3", "python"}
}

// FindInterpreter returns the Python interpreter active for this
// process, resolved from PATH. Used to create new environments and to
// run the payload when the current environment already satisfies the
// required imports.
func FindInterpreter(goos string) (string, error) {
	for _, name := range interpreterCandidates(goos) {
		if path, err := pyexec.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH")
}
