package pyenv

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// writeScript places an executable shell script in dir and returns its
// path. Tests that use it are POSIX-only and must skip on Windows.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// stubCommand replaces the package command function for the duration of
// the test.
func stubCommand(t *testing.T, fn func(name string, args ...string) *exec.Cmd) {
	t.Helper()
	prev := pyexec.command
	pyexec.command = fn
	t.Cleanup(func() { pyexec.command = prev })
}

// stubLookPath replaces the package lookPath function for the duration
// of the test.
func stubLookPath(t *testing.T, fn func(file string) (string, error)) {
	t.Helper()
	prev := pyexec.lookPath
	pyexec.lookPath = fn
	t.Cleanup(func() { pyexec.lookPath = prev })
}

// forbidSubprocesses fails the test if anything tries to spawn during
// it.
func forbidSubprocesses(t *testing.T) {
	t.Helper()
	stubCommand(t, func(name string, args ...string) *exec.Cmd {
		t.Fatalf("unexpected subprocess: %s %v", name, args)
		return nil
	})
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX-only test")
	}
}
