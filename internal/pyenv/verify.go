package pyenv

import (
	"os"
	"strings"
)

// Verifier checks an isolated interpreter against the required import
// set by running the imports inside it. The check is a black box: both
// output streams are discarded and the exit status alone is the
// verdict.
type Verifier struct {
	Imports []string
}

// Satisfied reports whether the interpreter at pythonPath can import
// every required name. A missing interpreter is unsatisfied without
// spawning anything.
func (v *Verifier) Satisfied(pythonPath string) bool {
	if _, err := os.Stat(pythonPath); err != nil {
		return false
	}

	cmd := pyexec.command(pythonPath, "-c", importStatement(v.Imports))
	// Stdout and Stderr stay nil: the subprocess output is discarded.
	return cmd.Run() == nil
}

// importStatement joins the import set into one inline program, so any
// single failing import aborts the whole check with a non-zero exit.
func importStatement(imports []string) string {
	stmts := make([]string, len(imports))
	for i, name := range imports {
		stmts[i] = "import " + name
	}
	return strings.Join(stmts, "; ")
}
