package pathutil

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// WorkingDirFunc returns the directory relative paths are anchored to.
type WorkingDirFunc func() (string, error)

// DiffMode selects how Relative compares the components of two paths.
type DiffMode int

const (
	// DiffPositional compares components index by index. A component that
	// matches at the same index is shared even if an earlier index already
	// diverged.
	DiffPositional DiffMode = iota
	// DiffCommonPrefix strips the longest common leading run of components
	// and diffs what remains.
	DiffCommonPrefix
)

func (m DiffMode) String() string {
	switch m {
	case DiffPositional:
		return "positional"
	case DiffCommonPrefix:
		return "common-prefix"
	}
	return fmt.Sprintf("DiffMode(%d)", int(m))
}

// ParseDiffMode converts a mode name into a DiffMode.
func ParseDiffMode(s string) (DiffMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "positional":
		return DiffPositional, nil
	case "common-prefix", "common_prefix", "prefix":
		return DiffCommonPrefix, nil
	}
	return DiffPositional, fmt.Errorf("invalid relative mode %q (valid values are positional, common-prefix)", s)
}

// AncestryMode selects how IsDescendant and IsAncestor compare paths.
type AncestryMode int

const (
	// AncestryPrefix treats any character prefix as an ancestor, so "/foo"
	// is an ancestor of "/foo2".
	AncestryPrefix AncestryMode = iota
	// AncestryComponent requires the ancestor to end on a component boundary.
	AncestryComponent
)

func (m AncestryMode) String() string {
	switch m {
	case AncestryPrefix:
		return "prefix"
	case AncestryComponent:
		return "component"
	}
	return fmt.Sprintf("AncestryMode(%d)", int(m))
}

// ParseAncestryMode converts a mode name into an AncestryMode.
func ParseAncestryMode(s string) (AncestryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prefix":
		return AncestryPrefix, nil
	case "component":
		return AncestryComponent, nil
	}
	return AncestryPrefix, fmt.Errorf("invalid ancestry mode %q (valid values are prefix, component)", s)
}

// Resolver performs lexical path operations. It holds no per-path state and
// is safe for concurrent use.
type Resolver struct {
	separator    string
	workingDir   WorkingDirFunc
	logger       *slog.Logger
	diffMode     DiffMode
	ancestryMode AncestryMode
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSeparator sets the separator used when a call passes none.
// Invalid separators are ignored.
func WithSeparator(sep string) Option {
	return func(r *Resolver) {
		if ValidSeparator(sep) {
			r.separator = sep
		}
	}
}

// WithWorkingDir replaces os.Getwd as the source of the working directory.
func WithWorkingDir(fn WorkingDirFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.workingDir = fn
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDiffMode sets the comparison used by Relative.
func WithDiffMode(mode DiffMode) Option {
	return func(r *Resolver) {
		r.diffMode = mode
	}
}

// WithAncestryMode sets the comparison used by IsDescendant and IsAncestor.
func WithAncestryMode(mode AncestryMode) Option {
	return func(r *Resolver) {
		r.ancestryMode = mode
	}
}

// New creates a Resolver. Without options it formats paths with the host
// separator, anchors relative paths with os.Getwd and uses positional diffs
// and prefix ancestry.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		separator:  OSSeparator,
		workingDir: os.Getwd,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// With returns a copy of r with opts applied on top of its settings.
func (r *Resolver) With(opts ...Option) *Resolver {
	clone := *r
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Separator returns the default separator of r.
func (r *Resolver) Separator() string {
	return r.separator
}

// DiffMode returns the comparison used by Relative.
func (r *Resolver) DiffMode() DiffMode {
	return r.diffMode
}

// AncestryMode returns the comparison used by IsDescendant and IsAncestor.
func (r *Resolver) AncestryMode() AncestryMode {
	return r.ancestryMode
}

// separatorOr returns sep when it is valid and the default separator otherwise.
func (r *Resolver) separatorOr(sep string) string {
	if ValidSeparator(sep) {
		return sep
	}
	return r.separator
}

// Normalize rewrites every '/' and '\' in path to sep. It does not resolve
// '.' or '..' segments.
func (r *Resolver) Normalize(path, sep string) string {
	return normalize(path, r.separatorOr(sep))
}

// ToWindowsStyle replaces all '/' in path with '\'.
func (r *Resolver) ToWindowsStyle(path string) string {
	return toWindowsStyle(path)
}

// ToUnixStyle replaces all '\' in path with '/'.
func (r *Resolver) ToUnixStyle(path string) string {
	return toUnixStyle(path)
}

// ToOSStyle rewrites the separators of path to the host convention.
func (r *Resolver) ToOSStyle(path string) string {
	return normalize(path, OSSeparator)
}

// ToStyle rewrites the separators of path according to style.
func (r *Resolver) ToStyle(path string, style Style) string {
	switch style {
	case StyleWindows:
		return toWindowsStyle(path)
	case StyleUnix:
		return toUnixStyle(path)
	default:
		return r.ToOSStyle(path)
	}
}
