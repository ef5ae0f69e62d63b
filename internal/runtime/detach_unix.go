//go:build !windows

package runtime

import "syscall"

// detachAttrs starts the child in a new session so it outlives the launcher
// and loses the launcher's controlling terminal.
func detachAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
