package pyenv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// InstallError reports a pip invocation that exited non-zero. The
// launcher terminates with the carried exit code; there are no retries
// and no fallback index.
type InstallError struct {
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("dependency installation failed with exit status %d", e.ExitCode)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Installer invokes the isolated environment's pip. Every invocation
// carries the same base flags: version-check prompts disabled and
// traffic directed at the configured index mirror.
type Installer struct {
	IndexURL         string
	RequirementsFile string
	Packages         []string

	// Out and Err receive pip's own output; the subprocess streams are
	// not parsed, only surfaced.
	Out io.Writer
	Err io.Writer
}

// Install runs pip from the manifest under root when one exists, and
// from the hardcoded package set otherwise. A non-zero pip exit yields
// an *InstallError.
func (i *Installer) Install(root, pipPath string) error {
	args := []string{"install", "--disable-pip-version-check", "-i", i.IndexURL}

	manifest := filepath.Join(root, i.RequirementsFile)
	if i.RequirementsFile != "" && fileExists(manifest) {
		args = append(args, "-r", manifest)
	} else {
		args = append(args, i.Packages...)
	}

	fmt.Fprintln(i.out(), "[bootstrap] installing dependencies...")

	cmd := pyexec.command(pipPath, args...)
	cmd.Stdout = i.out()
	cmd.Stderr = i.errOut()
	if err := cmd.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			code = exitErr.ExitCode()
		}
		return &InstallError{ExitCode: code, Err: err}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (i *Installer) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}

func (i *Installer) errOut() io.Writer {
	if i.Err != nil {
		return i.Err
	}
	return os.Stderr
}
