//go:build windows

package runtime

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachAttrs starts the child in its own process group without a console.
func detachAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
		HideWindow:    true,
	}
}
