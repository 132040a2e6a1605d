//go:build !windows

package daemon

import (
	"os"
	"syscall"
	"time"
)

// IsProcessRunning checks if a process with the given PID is running.
// On Unix, this uses signal 0 to check if the process exists.
func IsProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// TerminateProcess asks the daemon with the given PID to shut down with
// SIGTERM and kills it if it is still running after grace.
func TerminateProcess(pid int, grace time.Duration) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return process.Kill()
	}

	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if !IsProcessRunning(pid) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	return process.Kill()
}
