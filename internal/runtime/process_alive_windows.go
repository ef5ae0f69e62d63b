//go:build windows

package runtime

import "golang.org/x/sys/windows"

const stillActive = 259

// IsProcessAlive checks if a process with the given PID is running.
func IsProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)
	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == stillActive
}

// leadsOwnSession has no Windows equivalent; the start time check covers reuse.
func leadsOwnSession(pid int) bool {
	return true
}
