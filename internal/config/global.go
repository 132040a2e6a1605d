package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir returns the global pathkit configuration directory.
// On Unix: ~/.config/pathkit (or XDG_CONFIG_HOME/pathkit)
// On Windows: %APPDATA%\pathkit
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pathkit")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pathkit")
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return ""
	}
	return filepath.Join(homeDir, ".config", "pathkit")
}

// GlobalConfigPath returns the full path to the global config file.
func GlobalConfigPath() string {
	dir := GlobalConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// GlobalConfigExists returns true if a global config file exists.
func GlobalConfigExists() bool {
	path := GlobalConfigPath()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// LoadGlobalConfig loads the global configuration from disk.
// Returns nil, nil if no global config exists (not an error).
// Returns nil, error if the config exists but cannot be read or parsed.
func LoadGlobalConfig() (*Config, error) {
	path := GlobalConfigPath()
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	// Empty file is treated as no config
	if len(data) == 0 {
		return nil, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse global config: %w", err)
	}

	return &cfg, nil
}

// SaveGlobalConfig saves the configuration to the global config file.
// Creates the directory if it doesn't exist.
func SaveGlobalConfig(cfg *Config) error {
	dir := GlobalConfigDir()
	if dir == "" {
		return fmt.Errorf("cannot determine global config directory")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create global config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := GlobalConfigPath()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write global config: %w", err)
	}

	return nil
}

// MergeConfigs merges a base and an override config, with override taking precedence.
// Only non-zero values from override replace base values.
// If both are nil, returns an empty Config (not nil).
func MergeConfigs(base, override *Config) *Config {
	result := &Config{}

	if base != nil {
		*result = *base
	}

	if override != nil {
		if override.Version != 0 {
			result.Version = override.Version
		}
		if override.Separator != "" {
			result.Separator = override.Separator
		}
		if override.Relative.Mode != "" {
			result.Relative.Mode = override.Relative.Mode
		}
		if override.Ancestry.Mode != "" {
			result.Ancestry.Mode = override.Ancestry.Mode
		}

		// Merge log settings
		if override.Log.Level != "" {
			result.Log.Level = override.Log.Level
		}
		if override.Log.Format != "" {
			result.Log.Format = override.Log.Format
		}

		// Merge daemon settings
		if override.Daemon.Host != "" {
			result.Daemon.Host = override.Daemon.Host
		}
		if override.Daemon.Port != nil {
			port := *override.Daemon.Port
			result.Daemon.Port = &port
		}
	}

	return result
}

// LoadMerged layers the defaults, the global config and the project config
// (including environment overrides), in increasing order of precedence.
func LoadMerged(projectRoot string) (*Config, error) {
	globalCfg, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	projectCfg, err := NewLoader(projectRoot).Load()
	if err != nil {
		return nil, err
	}

	return MergeConfigs(MergeConfigs(Default(), globalCfg), projectCfg), nil
}
