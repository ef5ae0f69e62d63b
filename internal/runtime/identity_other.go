//go:build !linux && !windows

package runtime

// processStartTime is unavailable here; ownership falls back to the session check.
func processStartTime(pid int) (uint64, bool) {
	return 0, false
}
