package daemon

import (
	"hash/fnv"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/pathutil"
)

const (
	// PortRangeStart is the beginning of the IANA dynamic/private port range
	PortRangeStart = 49152

	// PortRangeSize is the number of ports in our allocation range (49152-65535)
	PortRangeSize = 16384
)

// CalculatePort returns a deterministic port for the given project root.
// The port is derived from a hash of the resolved absolute path, so
// "proj/../proj" and "proj" map to the same port, and falls in 49152-65535.
func CalculatePort(projectRoot string) (int, error) {
	absPath, err := pathutil.Absolute(projectRoot, "")
	if err != nil {
		return 0, err
	}

	// FNV-1a for good distribution
	h := fnv.New32a()
	h.Write([]byte(absPath))

	port := PortRangeStart + int(h.Sum32()%uint32(PortRangeSize))
	return port, nil
}

// DeterminePort returns the port to use for the daemon.
// If the config has an explicit port set (including 0), that port is used.
// If the config port is nil or config is nil, the hash-based port is calculated.
func DeterminePort(projectRoot string, cfg *config.Config) (int, error) {
	if cfg != nil && cfg.Daemon.Port != nil {
		return *cfg.Daemon.Port, nil
	}

	return CalculatePort(projectRoot)
}
