package pyenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolutionError reports a capability that could not be found on the
// active import search path. It is internal control flow: the
// orchestrator collapses it to a boolean, and it never reaches the
// user.
type ResolutionError struct {
	Capability string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("capability %q not importable from the active environment", e.Capability)
}

// Resolver answers whether import names are serviceable by the
// environment this process is already running in. It inspects the
// filesystem only, never spawning a subprocess, so a fast-path check
// stays cheap.
type Resolver struct {
	searchPath []string
}

// NewResolver derives the import search path from the invocation
// context: the activated environment's site-packages (when VIRTUAL_ENV
// is set) followed by the PYTHONPATH entries.
func NewResolver(ictx InvocationContext, goos string) *Resolver {
	var search []string
	search = append(search, sitePackages(ictx.VirtualEnv, goos)...)
	search = append(search, ictx.PythonPath...)
	return &Resolver{searchPath: search}
}

// sitePackages returns the site-packages directories of an environment,
// empty when venv is unset or the layout is absent.
func sitePackages(venv, goos string) []string {
	if venv == "" {
		return nil
	}
	if goos == "windows" {
		return []string{filepath.Join(venv, "Lib", "site-packages")}
	}
	// POSIX venvs nest site-packages under a versioned lib directory
	// (lib/python3.12/site-packages).
	matches, err := filepath.Glob(filepath.Join(venv, "lib", "python*", "site-packages"))
	if err != nil {
		return nil
	}
	return matches
}

// Resolve reports whether a single import name is serviceable. A name
// resolves when any search directory holds it as a package directory, a
// plain module, or a compiled extension module.
func (r *Resolver) Resolve(name string) error {
	for _, dir := range r.searchPath {
		if _, err := os.Stat(filepath.Join(dir, name, "__init__.py")); err == nil {
			return nil
		}
		if _, err := os.Stat(filepath.Join(dir, name+".py")); err == nil {
			return nil
		}
		for _, pattern := range []string{name + ".*.so", name + ".*.pyd"} {
			if matches, err := filepath.Glob(filepath.Join(dir, pattern)); err == nil && len(matches) > 0 {
				return nil
			}
		}
	}
	return &ResolutionError{Capability: name}
}

// SatisfiesAll reports whether every import name resolves,
// short-circuiting on the first miss. Partial success counts as
// failure.
func (r *Resolver) SatisfiesAll(names []string) bool {
	for _, name := range names {
		if err := r.Resolve(name); err != nil {
			return false
		}
	}
	return true
}
