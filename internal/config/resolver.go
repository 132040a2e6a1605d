package config

import (
	"log/slog"

	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// ResolverOptions translates the configuration into resolver options.
// The configuration must have passed Validate.
func (c *Config) ResolverOptions() ([]pathutil.Option, error) {
	sep, err := pathutil.ParseSeparator(c.Separator)
	if err != nil {
		return nil, err
	}
	diffMode, err := pathutil.ParseDiffMode(c.Relative.Mode)
	if err != nil {
		return nil, err
	}
	ancestryMode, err := pathutil.ParseAncestryMode(c.Ancestry.Mode)
	if err != nil {
		return nil, err
	}

	return []pathutil.Option{
		pathutil.WithSeparator(sep),
		pathutil.WithDiffMode(diffMode),
		pathutil.WithAncestryMode(ancestryMode),
	}, nil
}

// NewResolver builds a resolver from the configuration. extra options are
// applied last and win over configured values.
func (c *Config) NewResolver(logger *slog.Logger, extra ...pathutil.Option) (*pathutil.Resolver, error) {
	opts, err := c.ResolverOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, pathutil.WithLogger(logger))
	return pathutil.New(append(opts, extra...)...), nil
}
