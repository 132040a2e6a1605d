package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pommel-dev/pathkit/internal/daemon"
)

// StatusInfo is the JSON form of `pathkit status`.
type StatusInfo struct {
	Running       bool      `json:"running"`
	PID           int       `json:"pid,omitempty"`
	Address       string    `json:"address,omitempty"`
	StartedAt     time.Time `json:"started_at,omitempty"`
	UptimeSeconds float64   `json:"uptime_seconds,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the project's daemon is running",
	Long: `Display the state of the pathkitd daemon serving this project.

Examples:
  pathkit status
  pathkit status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the project's daemon",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stopCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := output(cmd)
	info := StatusInfo{}

	running, pid := daemon.NewStateManager(GetProjectRoot()).IsRunning()
	if running {
		client, state, err := NewClientFromProjectRoot(GetProjectRoot())
		if err != nil {
			return err
		}
		health, err := client.Health()
		if err != nil {
			return ErrDaemonConnectionFailed(err)
		}
		info = StatusInfo{
			Running:       true,
			PID:           pid,
			Address:       state.Address,
			StartedAt:     state.StartedAt,
			UptimeSeconds: health.UptimeSeconds,
		}
	}

	if IsJSONOutput() {
		return out.JSON(info)
	}

	if !info.Running {
		out.Line("Daemon: not running")
		return nil
	}
	out.Table([]string{"Daemon", "Value"}, [][]string{
		{"Running", "true"},
		{"PID", strconv.Itoa(info.PID)},
		{"Address", info.Address},
		{"Uptime", (time.Duration(info.UptimeSeconds) * time.Second).String()},
	})
	return nil
}

func runStop(cmd *cobra.Command, args []string) error {
	out := output(cmd)
	stateManager := daemon.NewStateManager(GetProjectRoot())

	running, pid := stateManager.IsRunning()
	if !running {
		if pid > 0 {
			out.Warn("Daemon was not running (cleaned up stale PID file for PID %d)", pid)
			return nil
		}
		return ErrDaemonNotRunning()
	}

	if err := daemon.TerminateProcess(pid, daemon.ShutdownTimeout); err != nil {
		return fmt.Errorf("failed to stop daemon (PID %d): %w", pid, err)
	}

	out.Success("Daemon stopped (PID %d)", pid)
	return nil
}
