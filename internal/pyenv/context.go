package pyenv

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/mesh-intelligence/pylaunch/internal/paths"
)

// MarkerEnv is the re-entrancy marker variable. A handed-off process
// carries it so a second bootstrap pass knows it is already inside the
// isolated environment.
const MarkerEnv = "PYLAUNCH_BOOTSTRAPPED"

// markerSentinel is the only value that counts as "set". Absence or any
// other value means a fresh top-level invocation.
const markerSentinel = "1"

// processEnv is the slice of the process environment the launcher
// cares about, parsed once at startup.
type processEnv struct {
	Marker     string `env:"PYLAUNCH_BOOTSTRAPPED"`
	VirtualEnv string `env:"VIRTUAL_ENV"`
	PythonPath string `env:"PYTHONPATH"`
}

// InvocationContext captures everything about the current invocation
// the orchestrator branches on: the payload argument vector, the script
// root, and whether this process was launched by a prior handoff. It is
// built once; the orchestrator never reads ambient environment state.
type InvocationContext struct {
	// ScriptPath is the absolute path of the payload script.
	ScriptPath string

	// ScriptArgs are the payload arguments, order preserved.
	ScriptArgs []string

	// Root is the directory containing the script. All environment
	// paths are anchored here.
	Root string

	// Relaunched reports whether the re-entrancy marker carried the
	// exact sentinel value.
	Relaunched bool

	// VirtualEnv is the active environment directory, when one is
	// activated in this process.
	VirtualEnv string

	// PythonPath holds the PYTHONPATH entries of this process.
	PythonPath []string
}

// Argv returns the payload argument vector: script path followed by all
// script arguments. A handoff must pass exactly this vector so the
// relaunched process behaves identically to a direct invocation.
func (c InvocationContext) Argv() []string {
	return append([]string{c.ScriptPath}, c.ScriptArgs...)
}

// CurrentInvocation builds the InvocationContext for this process from
// the given payload command line and the process environment.
func CurrentInvocation(script string, args []string) (InvocationContext, error) {
	var pe processEnv
	if err := env.Parse(&pe); err != nil {
		return InvocationContext{}, fmt.Errorf("parse process environment: %w", err)
	}

	root, err := paths.ScriptRoot(script)
	if err != nil {
		return InvocationContext{}, err
	}
	abs, err := filepath.Abs(script)
	if err != nil {
		return InvocationContext{}, fmt.Errorf("resolve script path: %w", err)
	}

	return InvocationContext{
		ScriptPath: abs,
		ScriptArgs: args,
		Root:       root,
		Relaunched: pe.Marker == markerSentinel,
		VirtualEnv: pe.VirtualEnv,
		PythonPath: splitPathList(pe.PythonPath),
	}, nil
}

// splitPathList splits a PATH-style list using the platform separator,
// dropping empty entries.
func splitPathList(list string) []string {
	if list == "" {
		return nil
	}
	var out []string
	for _, entry := range filepath.SplitList(list) {
		if entry != "" {
			out = append(out, entry)
		}
	}
	return out
}
