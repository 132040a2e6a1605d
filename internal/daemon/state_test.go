package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// State File Tests
// =============================================================================

func TestStateRoundtrip_SaveThenLoad(t *testing.T) {
	tmpDir := t.TempDir()
	sm := NewStateManager(tmpDir)

	original := &DaemonState{
		Version:   1,
		PID:       4242,
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Address:   "127.0.0.1:50123",
		Port:      50123,
	}
	require.NoError(t, sm.SaveState(original))

	_, err := os.Stat(filepath.Join(tmpDir, ".pathkit", StateFile))
	require.NoError(t, err, "state file should be created under .pathkit")

	loaded, err := sm.LoadState()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadState_NilWhenFileMissing(t *testing.T) {
	state, err := NewStateManager(t.TempDir()).LoadState()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestLoadState_HandlesCorruptedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, ".pathkit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFile), []byte("{not json"), 0644))

	_, err := NewStateManager(tmpDir).LoadState()
	assert.Error(t, err)
}

func TestRemoveState(t *testing.T) {
	sm := NewStateManager(t.TempDir())
	require.NoError(t, sm.RemoveState(), "missing state file is not an error")

	require.NoError(t, sm.SaveState(&DaemonState{Version: 1}))
	require.NoError(t, sm.RemoveState())

	state, err := sm.LoadState()
	require.NoError(t, err)
	assert.Nil(t, state)
}

// =============================================================================
// PID File Tests
// =============================================================================

func TestPID_WriteReadRemove(t *testing.T) {
	sm := NewStateManager(t.TempDir())

	require.NoError(t, sm.WritePID(12345))
	pid, err := sm.ReadPID()
	require.NoError(t, err)
	assert.Equal(t, 12345, pid)

	require.NoError(t, sm.RemovePID())
	_, err = sm.ReadPID()
	assert.Error(t, err)

	require.NoError(t, sm.RemovePID(), "removing a missing PID file is not an error")
}

func TestReadPID_HandlesWhitespaceAndGarbage(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, ".pathkit")
	require.NoError(t, os.MkdirAll(dir, 0755))
	sm := NewStateManager(tmpDir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, PIDFile), []byte("  77\n"), 0644))
	pid, err := sm.ReadPID()
	require.NoError(t, err)
	assert.Equal(t, 77, pid)

	require.NoError(t, os.WriteFile(filepath.Join(dir, PIDFile), []byte("abc"), 0644))
	_, err = sm.ReadPID()
	assert.Error(t, err)
}

func TestIsRunning_ReturnsFalseWhenNoPIDFile(t *testing.T) {
	running, pid := NewStateManager(t.TempDir()).IsRunning()
	assert.False(t, running)
	assert.Equal(t, 0, pid)
}

func TestIsRunning_CleansUpStalePIDFiles(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, ".pathkit")
	require.NoError(t, os.MkdirAll(dir, 0755))

	// Above the maximum PID on Linux and macOS
	pidPath := filepath.Join(dir, PIDFile)
	require.NoError(t, os.WriteFile(pidPath, []byte("4194304"), 0644))

	running, pid := NewStateManager(tmpDir).IsRunning()
	assert.False(t, running)
	assert.Equal(t, 4194304, pid)

	_, err := os.Stat(pidPath)
	assert.True(t, os.IsNotExist(err), "stale PID file should be removed")
}

func TestIsRunning_ReturnsTrueForCurrentProcess(t *testing.T) {
	sm := NewStateManager(t.TempDir())
	require.NoError(t, sm.WritePID(os.Getpid()))

	running, pid := sm.IsRunning()
	assert.True(t, running)
	assert.Equal(t, os.Getpid(), pid)
}
