//go:build unix

package control

import (
	"os"
	"syscall"
)

// processExists checks whether a process with the given PID exists by
// sending signal 0, which performs the existence and permission check
// without delivering anything.
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	return err == nil
}
