// Package integration provides shared helpers for end-to-end bootstrap
// tests. The suite stands in a fake Python toolchain (shell scripts)
// for the real interpreter and pip, so the full provision / verify /
// install sequence runs against real subprocesses.
package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/mesh-intelligence/pylaunch/internal/pyenv"
	"github.com/mesh-intelligence/pylaunch/pkg/types"
)

// testEnv is one isolated script root with a scripted Python toolchain.
type testEnv struct {
	t *testing.T

	// Root is the script root directory.
	Root string

	// Script is the payload script path inside Root.
	Script string

	// PipArgsFile records the argument vector of the last pip run.
	PipArgsFile string
}

// newTestEnv creates a script root with a fake base interpreter whose
// venv module materializes a working environment layout, including a
// pip that records its arguments and exits with pipStatus.
func newTestEnv(t *testing.T, pipStatus int) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("integration suite uses POSIX shell scripts")
	}

	root := t.TempDir()
	env := &testEnv{
		t:           t,
		Root:        root,
		Script:      filepath.Join(root, "grader.py"),
		PipArgsFile: filepath.Join(root, "pip-args.txt"),
	}
	mustWriteFile(t, env.Script, "print('payload')\n")

	// The fake pip body is baked into the fake venv module so a
	// provisioned environment carries its own copy, as a real venv
	// does.
	pipBody := `#!/bin/sh
printf '%s\n' "$@" > ` + env.PipArgsFile + `
exit ` + strconv.Itoa(pipStatus) + `
`
	// "python3 -m venv <dir>" builds bin/{python,pip}. The environment
	// python succeeds only after a marker file shows up, which the
	// fake pip install leaves behind.
	basePython := `#!/bin/sh
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
    mkdir -p "$3/bin"
    cat > "$3/bin/pip" <<'PIP'
` + pipBody + `PIP
    chmod +x "$3/bin/pip"
    cat > "$3/bin/python" <<'PY'
#!/bin/sh
test -f "$(dirname "$0")/../installed"
PY
    chmod +x "$3/bin/python"
    exit 0
fi
exit 1
`
	mustWriteScript(t, filepath.Join(root, "python3"), basePython)
	return env
}

// markInstalled flips the fake environment python to "imports succeed".
func (e *testEnv) markInstalled(desc pyenv.Descriptor) {
	e.t.Helper()
	mustWriteFile(e.t, filepath.Join(desc.Dir, "installed"), "")
}

// pipArgs returns the recorded argument vector of the last pip run, or
// nil when pip never ran.
func (e *testEnv) pipArgs() []string {
	data, err := os.ReadFile(e.PipArgsFile)
	if err != nil {
		return nil
	}
	var args []string
	start := 0
	for i, c := range data {
		if c == '\n' {
			args = append(args, string(data[start:i]))
			start = i + 1
		}
	}
	return args
}

// newBootstrapper wires a Bootstrapper against the fake toolchain, with
// a recording strategy instead of a real handoff.
func (e *testEnv) newBootstrapper(cfg types.Config, strategy pyenv.Strategy) *pyenv.Bootstrapper {
	e.t.Helper()
	ictx := e.invocation()
	b := pyenv.NewBootstrapper(cfg, ictx, nil, os.Stdout, os.Stderr)
	b.Provisioner = &pyenv.Provisioner{
		BasePython: filepath.Join(e.Root, "python3"),
		Out:        os.Stdout,
	}
	b.Strategy = strategy
	return b
}

func (e *testEnv) invocation() pyenv.InvocationContext {
	return pyenv.InvocationContext{
		ScriptPath: e.Script,
		ScriptArgs: []string{"--round", "2"},
		Root:       e.Root,
	}
}

// recordingStrategy captures the handoff instead of performing it.
type recordingStrategy struct {
	calls   int
	python  string
	argv    []string
	environ []string
}

func (r *recordingStrategy) Name() string { return "recording" }

func (r *recordingStrategy) Launch(python string, argv []string, environ []string) error {
	r.calls++
	r.python = python
	r.argv = argv
	r.environ = environ
	return nil
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mustWriteScript(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}
