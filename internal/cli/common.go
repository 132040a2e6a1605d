package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/logging"
	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// workingDir anchors relative arguments. Tests replace it.
var workingDir pathutil.WorkingDirFunc = os.Getwd

// LoadMergedConfig loads the defaults, the global configuration and the
// project configuration, with later layers taking precedence, and validates
// the result.
func LoadMergedConfig(projectRoot string) (*config.Config, error) {
	cfg, err := config.LoadMerged(projectRoot)
	if err != nil {
		return nil, ErrConfigInvalid(err)
	}
	if err := config.ValidateOrError(cfg); err != nil {
		return nil, ErrConfigInvalid(err)
	}
	return cfg, nil
}

// newLogger returns the logger for a command. --verbose forces debug
// records, which include the resolver's anchoring decisions.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if IsVerbose() {
		level = "debug"
	}
	return logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
}

// newResolver builds the resolver for a command from the merged
// configuration and the global flags. extra options win over both.
func newResolver(cmd *cobra.Command, extra ...pathutil.Option) (*pathutil.Resolver, error) {
	cfg, err := LoadMergedConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	opts := []pathutil.Option{pathutil.WithWorkingDir(workingDir)}
	if separatorFlag != "" {
		sep, err := pathutil.ParseSeparator(separatorFlag)
		if err != nil {
			output(cmd).Warn("Unknown separator %q, using the configured one", separatorFlag)
		}
		opts = append(opts, pathutil.WithSeparator(sep))
	}

	resolver, err := cfg.NewResolver(newLogger(cmd, cfg), append(opts, extra...)...)
	if err != nil {
		return nil, ErrConfigInvalid(err)
	}
	return resolver, nil
}

// resolverError converts an error returned by the resolver into a CLIError.
func resolverError(err error) error {
	if errors.Is(err, pathutil.ErrWorkingDir) {
		return ErrWorkingDirUnavailable(err)
	}
	return err
}

// output returns a formatter writing to the command's streams.
func output(cmd *cobra.Command) *OutputFormatter {
	return NewOutputFormatterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// exactArgs rejects calls that do not name every argument in names.
func exactArgs(usage string, names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return ErrMissingArgument(names[len(args)], usage)
		}
		if len(args) > len(names) {
			return ErrTooManyArguments(usage)
		}
		return nil
	}
}

// minArgs requires the leading arguments in names and accepts any number
// after them.
func minArgs(usage string, names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return ErrMissingArgument(names[len(args)], usage)
		}
		return nil
	}
}
