//go:build !windows

package runtime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CancelProcessByPID sends SIGTERM to the process group led by pid, or to pid
// alone when it does not lead a group.
func CancelProcessByPID(pid int) error {
	if pid <= 0 {
		return fmt.Errorf("invalid pid: %d", pid)
	}
	if pgid, err := unix.Getpgid(pid); err == nil && pgid == pid {
		return unix.Kill(-pgid, unix.SIGTERM)
	}
	return unix.Kill(pid, unix.SIGTERM)
}
