//go:build windows

package daemon

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// IsProcessRunning checks if a process with the given PID is running.
// On Windows, os.FindProcess always succeeds, so we use tasklist to check.
func IsProcessRunning(pid int) bool {
	cmd := exec.Command("tasklist", "/FI", "PID eq "+strconv.Itoa(pid), "/NH", "/FO", "CSV")
	output, err := cmd.Output()
	if err != nil {
		return false
	}

	// tasklist prints an INFO line when nothing matches
	outputStr := string(output)
	if strings.Contains(outputStr, "INFO:") {
		return false
	}
	return strings.Contains(outputStr, strconv.Itoa(pid))
}

// TerminateProcess kills the daemon with the given PID. Windows has no
// SIGTERM equivalent, so grace is unused.
func TerminateProcess(pid int, grace time.Duration) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return process.Kill()
}
