package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pommel-dev/pathkit/internal/config"
)

// configKeys lists the keys accepted by `config get` and `config set`.
var configKeys = []string{
	"version",
	"separator",
	"relative.mode",
	"ancestry.mode",
	"log.level",
	"log.format",
	"daemon.host",
	"daemon.port",
}

var initGlobal bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	Long: `View or modify pathkit configuration.

Settings are layered: built-in defaults, then the global config
(~/.config/pathkit/config.yaml), then the project config
(.pathkit/config.yaml), then PATHKIT_* environment variables.

Keys use dot notation (e.g., relative.mode, daemon.port).`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show one effective setting",
	Args:  exactArgs("config get KEY", "KEY"),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting in the project config",
	Args:  exactArgs("config set KEY VALUE", "KEY", "VALUE"),
	RunE:  runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&initGlobal, "global", false, "Write the global config instead of the project config")

	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := LoadMergedConfig(projectRoot)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return output(cmd).JSON(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := LoadMergedConfig(projectRoot)
	if err != nil {
		return err
	}

	value, err := getValueByKey(cfg, args[0])
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return output(cmd).JSON(map[string]interface{}{
			"key":   args[0],
			"value": value,
		})
	}
	if port, ok := value.(*int); ok {
		if port == nil {
			value = "auto"
		} else {
			value = *port
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	loader := config.NewLoader(projectRoot)

	// Only the project file is rewritten, so start from its own values
	// rather than the merged view.
	fileCfg, err := loader.LoadFile()
	if err != nil {
		return ErrConfigInvalid(err)
	}
	cfg := config.MergeConfigs(config.Default(), fileCfg)

	if err := setValueByKey(cfg, key, value); err != nil {
		return err
	}

	if validationErrs := config.Validate(cfg); validationErrs.HasErrors() {
		return ErrConfigInvalid(validationErrs)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if IsJSONOutput() {
		return output(cmd).JSON(map[string]string{"key": key, "value": value})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := output(cmd)

	if initGlobal {
		path := config.GlobalConfigPath()
		if config.GlobalConfigExists() {
			return ErrConfigExists(path)
		}
		if err := config.SaveGlobalConfig(config.Default()); err != nil {
			return err
		}
		if IsJSONOutput() {
			return out.JSON(map[string]string{"path": path})
		}
		out.Success("Created global configuration at %s", path)
		return nil
	}

	loader := config.NewLoader(projectRoot)
	if loader.Exists() {
		return ErrConfigExists(loader.ConfigPath())
	}
	if _, err := loader.Init(); err != nil {
		return err
	}

	if IsJSONOutput() {
		return out.JSON(map[string]string{"path": loader.ConfigPath()})
	}
	out.Success("Created configuration at %s", loader.ConfigPath())
	return nil
}

func getValueByKey(cfg *config.Config, key string) (interface{}, error) {
	switch key {
	case "version":
		return cfg.Version, nil
	case "separator":
		return cfg.Separator, nil
	case "relative.mode":
		return cfg.Relative.Mode, nil
	case "ancestry.mode":
		return cfg.Ancestry.Mode, nil
	case "log.level":
		return cfg.Log.Level, nil
	case "log.format":
		return cfg.Log.Format, nil
	case "daemon.host":
		return cfg.Daemon.Host, nil
	case "daemon.port":
		return cfg.Daemon.Port, nil
	}
	return nil, ErrUnknownConfigKey(key)
}

func setValueByKey(cfg *config.Config, key, value string) error {
	switch key {
	case "version":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for version: %w", err)
		}
		cfg.Version = v
	case "separator":
		cfg.Separator = value
	case "relative.mode":
		cfg.Relative.Mode = value
	case "ancestry.mode":
		cfg.Ancestry.Mode = value
	case "log.level":
		cfg.Log.Level = value
	case "log.format":
		cfg.Log.Format = value
	case "daemon.host":
		cfg.Daemon.Host = value
	case "daemon.port":
		if value == "auto" || value == "" {
			cfg.Daemon.Port = nil
			return nil
		}
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for daemon.port: %w", err)
		}
		cfg.Daemon.Port = &port
	default:
		return ErrUnknownConfigKey(key)
	}
	return nil
}
