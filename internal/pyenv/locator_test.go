package pyenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocatePOSIXLayout(t *testing.T) {
	got := Locate("/srv/app", ".venv", "linux")

	assert.Equal(t, filepath.Join("/srv/app", ".venv"), got.Dir)
	assert.Equal(t, filepath.Join("/srv/app", ".venv", "bin", "python"), got.Python)
	assert.Equal(t, filepath.Join("/srv/app", ".venv", "bin", "pip"), got.Pip)
}

func TestLocateWindowsLayout(t *testing.T) {
	got := Locate(`C:\app`, ".venv", "windows")

	assert.Equal(t, filepath.Join(`C:\app`, ".venv", "Scripts", "python.exe"), got.Python)
	assert.Equal(t, filepath.Join(`C:\app`, ".venv", "Scripts", "pip.exe"), got.Pip)
}

func TestLocateIsDeterministic(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows"} {
		first := Locate("/srv/app", ".venv", goos)
		second := Locate("/srv/app", ".venv", goos)
		assert.Equal(t, first, second, "goos=%s", goos)
	}
}

func TestLocateHonorsVenvDirName(t *testing.T) {
	got := Locate("/srv/app", "env", "linux")
	assert.Equal(t, filepath.Join("/srv/app", "env"), got.Dir)
}
