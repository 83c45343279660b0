// Package paths resolves the payload script root and the launcher
// configuration directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigDir overrides the configuration directory when set.
const EnvConfigDir = "PYLAUNCH_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden
// in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// ScriptRoot returns the absolute directory containing the payload
// script. Every launcher path (venv directory, manifest, journal) is
// anchored here. The script itself does not have to exist yet; only the
// path is resolved.
func ScriptRoot(script string) (string, error) {
	if script == "" {
		return "", fmt.Errorf("script path must not be empty")
	}
	abs, err := filepath.Abs(script)
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}
	return filepath.Dir(abs), nil
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/pylaunch (fallback ~/.config/pylaunch)
// macOS:   ~/Library/Application Support/pylaunch
// Windows: %APPDATA%/pylaunch
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pylaunch"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "pylaunch"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on
		// Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "pylaunch"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PYLAUNCH_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}
