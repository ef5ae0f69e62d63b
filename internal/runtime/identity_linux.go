//go:build linux

package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// processStartTime returns when pid started, in clock ticks since boot
// (field 22 of /proc/<pid>/stat).
func processStartTime(pid int) (uint64, bool) {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return 0, false
	}
	// comm may contain spaces and parentheses; fields resume after the last ')'.
	end := bytes.LastIndexByte(data, ')')
	if end < 0 {
		return 0, false
	}
	fields := strings.Fields(string(data[end+1:]))
	if len(fields) < 20 {
		return 0, false
	}
	ticks, err := strconv.ParseUint(fields[19], 10, 64)
	if err != nil {
		return 0, false
	}
	return ticks, true
}
