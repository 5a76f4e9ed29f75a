//go:build windows

package control

import "os"

// processExists reports whether a process with the given PID exists.
// FindProcess only fails on Windows when the process is gone.
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	process.Release()
	return true
}
