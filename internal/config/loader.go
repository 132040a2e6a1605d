package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the config file without extension
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension
	ConfigFileExt = "yaml"
	// PathkitDir is the name of the per-project pathkit directory
	PathkitDir = ".pathkit"
	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "PATHKIT"
)

// envKeys lists the settings that can be overridden from the environment.
var envKeys = []string{
	"separator",
	"relative.mode",
	"ancestry.mode",
	"log.level",
	"log.format",
	"daemon.host",
	"daemon.port",
}

// EnvVar returns the environment variable that overrides key, e.g.
// "relative.mode" -> "PATHKIT_RELATIVE_MODE".
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Loader handles configuration loading and saving
type Loader struct {
	projectRoot string
	v           *viper.Viper
}

// NewLoader creates a new config loader for the given project root
func NewLoader(projectRoot string) *Loader {
	return &Loader{
		projectRoot: projectRoot,
		v:           newViper(),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)
	for _, key := range envKeys {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key, EnvVar(key))
	}
	return v
}

// ConfigPath returns the full path to the config file
func (l *Loader) ConfigPath() string {
	return filepath.Join(l.projectRoot, PathkitDir, ConfigFileName+"."+ConfigFileExt)
}

// PathkitDirPath returns the full path to the .pathkit directory
func (l *Loader) PathkitDirPath() string {
	return filepath.Join(l.projectRoot, PathkitDir)
}

// Exists returns true if a config file exists at the expected location
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.ConfigPath())
	return err == nil
}

// Load reads the project configuration and applies environment overrides.
// A missing config file is not an error: the result then only carries the
// environment overrides. Unset fields are left zero so the result can be
// layered over other configs with MergeConfigs.
func (l *Loader) Load() (*Config, error) {
	// Create a fresh viper instance for each load to avoid stale state
	l.v = newViper()
	return l.read(l.v)
}

// LoadFile reads only the project config file, ignoring the environment.
// It is what gets edited and saved back.
func (l *Loader) LoadFile() (*Config, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)
	return l.read(v)
}

func (l *Loader) read(v *viper.Viper) (*Config, error) {
	if l.Exists() {
		v.SetConfigFile(l.ConfigPath())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the project configuration layered over the defaults
func (l *Loader) LoadOrDefault() (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}
	return MergeConfigs(Default(), cfg), nil
}

// Save writes the configuration to disk
// It creates the .pathkit directory if it doesn't exist
func (l *Loader) Save(cfg *Config) error {
	pathkitDir := l.PathkitDirPath()
	if err := os.MkdirAll(pathkitDir, 0755); err != nil {
		return fmt.Errorf("failed to create .pathkit directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(ConfigFileExt)
	v.Set("version", cfg.Version)
	v.Set("separator", cfg.Separator)
	v.Set("relative.mode", cfg.Relative.Mode)
	v.Set("ancestry.mode", cfg.Ancestry.Mode)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("daemon.host", cfg.Daemon.Host)
	if cfg.Daemon.Port != nil {
		v.Set("daemon.port", *cfg.Daemon.Port)
	}

	if err := v.WriteConfigAs(l.ConfigPath()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init initializes a new pathkit configuration in the project
// It creates the .pathkit directory and writes a default config file
func (l *Loader) Init() (*Config, error) {
	if l.Exists() {
		return nil, fmt.Errorf("config already exists at %s", l.ConfigPath())
	}

	cfg := Default()
	if err := l.Save(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Watcher delivers re-read configurations after the project config file
// changes. It is created by Loader.Watch and runs until its context ends.
type Watcher struct {
	loader   *Loader
	fs       *fsnotify.Watcher
	onChange func(*Config, error)
}

// Watch establishes a watch on the project config file. onChange receives
// the re-read configuration (or the error that prevented reading it) every
// time the file is written, but only while Run is active.
func (l *Loader) Watch(onChange func(*Config, error)) (*Watcher, error) {
	if !l.Exists() {
		return nil, fmt.Errorf("config file not found at %s", l.ConfigPath())
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are seen too.
	if err := fsw.Add(l.PathkitDirPath()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", l.PathkitDirPath(), err)
	}

	return &Watcher{loader: l, fs: fsw, onChange: onChange}, nil
}

// Run dispatches config changes until ctx is done, then closes the watch.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	configFile := filepath.Clean(w.loader.ConfigPath())
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != configFile {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			w.onChange(w.loader.read(newViper()))
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.onChange(nil, fmt.Errorf("config watch error: %w", err))
		}
	}
}

// Close releases the watch without running it.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
