package daemon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pommel-dev/pathkit/internal/config"
)

const (
	StateFile = "daemon.json"
	PIDFile   = "pathkitd.pid"
)

// DaemonState describes a running daemon so that other processes can find it.
type DaemonState struct {
	Version   int       `json:"version"`
	PID       int       `json:"pid"`
	StartedAt time.Time `json:"started_at"`
	Address   string    `json:"address"`
	Port      int       `json:"port"`
}

// StateManager handles the state and PID files of a project's daemon.
type StateManager struct {
	dir string
}

// NewStateManager creates a new StateManager for the given project root.
func NewStateManager(projectRoot string) *StateManager {
	return &StateManager{
		dir: filepath.Join(projectRoot, config.PathkitDir),
	}
}

func (s *StateManager) ensureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// SaveState persists the daemon state to disk.
func (s *StateManager) SaveState(state *DaemonState) error {
	if err := s.ensureDir(); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", config.PathkitDir, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, StateFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// LoadState reads the daemon state from disk. It returns nil, nil when no
// daemon has recorded its state.
func (s *StateManager) LoadState() (*DaemonState, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, StateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state DaemonState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	return &state, nil
}

// RemoveState deletes the state file, ignoring a missing file.
func (s *StateManager) RemoveState() error {
	err := os.Remove(filepath.Join(s.dir, StateFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

// WritePID writes the daemon process ID to the PID file.
func (s *StateManager) WritePID(pid int) error {
	if err := s.ensureDir(); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", config.PathkitDir, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, PIDFile), []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	return nil
}

// ReadPID reads the daemon process ID from the PID file.
func (s *StateManager) ReadPID() (int, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, PIDFile))
	if err != nil {
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID format: %w", err)
	}

	return pid, nil
}

// RemovePID deletes the PID file.
// Does not return an error if the file doesn't exist.
func (s *StateManager) RemovePID() error {
	err := os.Remove(filepath.Join(s.dir, PIDFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// IsRunning checks if the daemon process is currently running.
// Returns (true, pid) if running, (false, pid) if not running but PID file exists,
// or (false, 0) if no PID file exists.
// Cleans up stale PID files when the process is not running.
func (s *StateManager) IsRunning() (bool, int) {
	pid, err := s.ReadPID()
	if err != nil {
		return false, 0
	}

	if !IsProcessRunning(pid) {
		_ = s.RemovePID()
		return false, pid
	}

	return true, pid
}
