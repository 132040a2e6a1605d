package cli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/daemon"
)

// daemonBinary is the executable launched by `pathkit start`.
var daemonBinary = "pathkitd"

// startTimeout bounds how long start waits for the daemon to report healthy.
var startTimeout = 10 * time.Second

var startForeground bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pathkit daemon",
	Long: `Start the pathkitd daemon for this project in the background and wait
until it answers health checks.

The project needs a configuration file ('pathkit config init').
Use --foreground to run the daemon in this process for debugging.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&startForeground, "foreground", "f", false, "Run daemon in foreground (for debugging)")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if !config.NewLoader(projectRoot).Exists() {
		return ErrConfigNotFound()
	}

	stateManager := daemon.NewStateManager(GetProjectRoot())
	if running, pid := stateManager.IsRunning(); running {
		return ErrDaemonAlreadyRunning(pid)
	}

	cfg, err := LoadMergedConfig(projectRoot)
	if err != nil {
		return err
	}

	if startForeground {
		return runDaemonForeground(cmd, cfg)
	}

	daemonCmd := exec.Command(daemonBinary, "--project", projectRoot)
	if err := daemonCmd.Start(); err != nil {
		return ErrDaemonStartFailed(err)
	}

	exited := make(chan error, 1)
	go func() { exited <- daemonCmd.Wait() }()

	timeout := time.After(startTimeout)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-exited:
			if err == nil {
				err = errors.New("daemon exited during startup")
			}
			return ErrDaemonStartFailed(err)
		case <-timeout:
			_ = daemonCmd.Process.Kill()
			return ErrDaemonHealthTimeout()
		case <-ticker.C:
			// The daemon records its address once it is listening, which
			// also covers a system-assigned port.
			client, _, err := NewClientFromProjectRoot(GetProjectRoot())
			if err != nil {
				continue
			}
			if _, err := client.Health(); err == nil {
				output(cmd).Success("pathkit daemon started (PID %d)", daemonCmd.Process.Pid)
				return nil
			}
		}
	}
}

// runDaemonForeground runs the daemon in this process until the command's
// context is cancelled or a shutdown signal arrives.
func runDaemonForeground(cmd *cobra.Command, cfg *config.Config) error {
	out := output(cmd)
	out.Line("Starting pathkit daemon in foreground mode...")
	out.Line("Press Ctrl+C to stop")

	d, err := daemon.New(projectRoot, cfg, newLogger(cmd, cfg))
	if err != nil {
		return ErrDaemonStartFailed(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("daemon error: %w", err)
	}

	out.Line("Daemon stopped")
	return nil
}
