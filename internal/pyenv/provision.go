package pyenv

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// Provisioner creates isolated environments. Creation delegates to the
// base interpreter's venv module, which bundles a private copy of pip
// into the new environment.
type Provisioner struct {
	// BasePython overrides PATH resolution of the base interpreter.
	BasePython string

	// Out receives the progress line when an environment is created.
	Out io.Writer
}

// Ensure creates the environment directory when it is absent. An
// existing directory is left untouched; inspecting its contents is the
// verifier's job. The call is idempotent and spawns nothing on the
// already-provisioned path. Creation failure is fatal to the bootstrap
// and propagates.
func (p *Provisioner) Ensure(desc Descriptor) error {
	if _, err := os.Stat(desc.Dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat environment directory: %w", err)
	}

	python := p.BasePython
	if python == "" {
		found, err := FindInterpreter(runtime.GOOS)
		if err != nil {
			return err
		}
		python = found
	}

	fmt.Fprintf(p.out(), "[bootstrap] creating virtual environment at %s\n", desc.Dir)

	cmd := pyexec.command(python, "-m", "venv", desc.Dir)
	cmd.Stdout = p.out()
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("create virtual environment: %w", err)
	}
	return nil
}

func (p *Provisioner) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}
