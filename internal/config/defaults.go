package config

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Version:   1,
		Separator: "auto",
		Relative: RelativeConfig{
			Mode: "positional",
		},
		Ancestry: AncestryConfig{
			Mode: "prefix",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Daemon: DaemonConfig{
			Host: "127.0.0.1",
			Port: nil, // nil = use hash-based port calculation
		},
	}
}
