package pyenv

import "path/filepath"

// Descriptor is the derived location of an isolated environment: its
// directory and the interpreter and pip executables inside it. It is
// computed, never stored.
type Descriptor struct {
	Dir    string
	Python string
	Pip    string
}

// Locate derives the Descriptor for a script root. Pure function of its
// inputs: no filesystem access, no failure modes. Exactly two layout
// variants exist, the Windows Scripts/ convention and the POSIX bin/
// convention; goos selects between them.
func Locate(root, venvDirName, goos string) Descriptor {
	dir := filepath.Join(root, venvDirName)
	if goos == "windows" {
		return Descriptor{
			Dir:    dir,
			Python: filepath.Join(dir, "Scripts", "python.exe"),
			Pip:    filepath.Join(dir, "Scripts", "pip.exe"),
		}
	}
	return Descriptor{
		Dir:    dir,
		Python: filepath.Join(dir, "bin", "python"),
		Pip:    filepath.Join(dir, "bin", "pip"),
	}
}
