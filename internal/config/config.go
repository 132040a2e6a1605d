// Package config provides configuration loading, validation, and merging.
package config

import (
	"fmt"
)

// Config represents the complete pathkit configuration
type Config struct {
	Version   int            `yaml:"version" json:"version" mapstructure:"version"`
	Separator string         `yaml:"separator" json:"separator" mapstructure:"separator"`
	Relative  RelativeConfig `yaml:"relative" json:"relative" mapstructure:"relative"`
	Ancestry  AncestryConfig `yaml:"ancestry" json:"ancestry" mapstructure:"ancestry"`
	Log       LogConfig      `yaml:"log" json:"log" mapstructure:"log"`
	Daemon    DaemonConfig   `yaml:"daemon" json:"daemon" mapstructure:"daemon"`
}

// RelativeConfig contains relative path computation settings
type RelativeConfig struct {
	Mode string `yaml:"mode" json:"mode" mapstructure:"mode"` // positional or common-prefix
}

// AncestryConfig contains descendant/ancestor check settings
type AncestryConfig struct {
	Mode string `yaml:"mode" json:"mode" mapstructure:"mode"` // prefix or component
}

// LogConfig contains logger settings
type LogConfig struct {
	Level  string `yaml:"level" json:"level" mapstructure:"level"`
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

// DaemonConfig contains daemon server settings
type DaemonConfig struct {
	Host string `yaml:"host" json:"host" mapstructure:"host"`
	Port *int   `yaml:"port" json:"port,omitempty" mapstructure:"port"` // nil = use hash-based port
}

// Address returns the full host:port address for the daemon.
// If Port is nil, returns just the host (port will be determined elsewhere).
// If Port is 0, returns host:0 (system-assigned port).
func (d DaemonConfig) Address() string {
	if d.Port == nil {
		return d.Host
	}
	return fmt.Sprintf("%s:%d", d.Host, *d.Port)
}

// AddressWithPort returns the full host:port address using the provided port.
func (d DaemonConfig) AddressWithPort(port int) string {
	return fmt.Sprintf("%s:%d", d.Host, port)
}
