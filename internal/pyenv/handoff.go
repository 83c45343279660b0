package pyenv

import (
	"fmt"
	"os"
	"strings"
)

// Strategy transfers execution to an isolated interpreter over the
// original payload argument vector. The platform picks one of two
// variants: replacing the process image in place, or spawning a child
// and waiting for it. Both present the same externally observable
// behavior: inherited stdio and a final exit status visible to whatever
// invoked the launcher.
type Strategy interface {
	// Name identifies the variant for journal entries.
	Name() string

	// Launch starts the interpreter with the given argument vector and
	// environment. On the replace variant a successful call never
	// returns. An error means the launch itself failed, which is fatal;
	// the payload's own failure is not an error here.
	Launch(python string, argv []string, environ []string) error
}

// MarkerEnviron returns base with the re-entrancy marker set to its
// sentinel value, replacing any existing assignment.
func MarkerEnviron(base []string) []string {
	out := make([]string, 0, len(base)+1)
	prefix := MarkerEnv + "="
	for _, entry := range base {
		if strings.HasPrefix(entry, prefix) {
			continue
		}
		out = append(out, entry)
	}
	return append(out, prefix+markerSentinel)
}

// spawnStrategy launches the interpreter as a child with inherited
// standard streams, waits for it, then exits 0 regardless of the
// child's status. Exact exit-code propagation on this variant is a
// documented simplification. Used where the platform cannot replace the
// process image.
type spawnStrategy struct {
	// exit is overridable in tests; defaults to os.Exit.
	exit func(code int)
}

func (s *spawnStrategy) Name() string { return "spawn-and-wait" }

func (s *spawnStrategy) Launch(python string, argv []string, environ []string) error {
	cmd := pyexec.command(python, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = environ

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch isolated interpreter: %w", err)
	}
	// The child's exit status is deliberately not propagated.
	_ = cmd.Wait()

	exit := s.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(0)
	return nil
}
