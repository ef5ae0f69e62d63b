//go:build !windows

package runtime

import "golang.org/x/sys/unix"

// IsProcessAlive checks if a process with the given PID is running.
func IsProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}

// leadsOwnSession reports whether pid is a session leader. Every detached run
// is started with Setsid, so a recorded PID that is not one has been reused.
func leadsOwnSession(pid int) bool {
	sid, err := unix.Getsid(pid)
	return err == nil && sid == pid
}
