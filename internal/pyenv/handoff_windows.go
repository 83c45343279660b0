//go:build windows

package pyenv

// PlatformStrategy returns the handoff variant for this platform.
// Windows cannot replace a process image in place, so the launcher
// spawns the interpreter and waits for it.
func PlatformStrategy() Strategy {
	return &spawnStrategy{}
}
