// Package pathutil provides lexical path handling that never touches the
// filesystem. Paths are plain strings in either separator convention; the
// only ambient input is the working directory, which anchors relative paths
// when an absolute form is requested.
package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// UnixSeparator is the separator used by Unix-style paths.
	UnixSeparator = "/"
	// WindowsSeparator is the separator used by Windows-style paths.
	WindowsSeparator = `\`
)

// OSSeparator is the separator conventional for the host platform.
var OSSeparator = string(filepath.Separator)

// ErrInvalidSeparator is returned by ParseSeparator for unknown values.
var ErrInvalidSeparator = errors.New("invalid separator")

// ErrInvalidStyle is returned by ParseStyle for unknown values.
var ErrInvalidStyle = errors.New("invalid style")

// ValidSeparator reports whether sep can be used to interpret and format paths.
func ValidSeparator(sep string) bool {
	return sep == UnixSeparator || sep == WindowsSeparator
}

// ParseSeparator converts a user supplied separator name into a separator.
// An empty result means "use the resolver default".
func ParseSeparator(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "default":
		return "", nil
	case UnixSeparator, "unix", "posix":
		return UnixSeparator, nil
	case WindowsSeparator, "windows", "win":
		return WindowsSeparator, nil
	case "os":
		return OSSeparator, nil
	}
	return "", fmt.Errorf("%w: %q (valid values are /, \\, unix, windows, os, auto)", ErrInvalidSeparator, s)
}

// Style selects one of the separator conventions a path can be rewritten to.
type Style string

const (
	StyleWindows Style = "windows"
	StyleUnix    Style = "unix"
	StyleOS      Style = "os"
)

// ParseStyle converts a style name into a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleWindows, "win":
		return StyleWindows, nil
	case StyleUnix, "posix":
		return StyleUnix, nil
	case StyleOS:
		return StyleOS, nil
	}
	return "", fmt.Errorf("%w: %q (valid values are windows, unix, os)", ErrInvalidStyle, s)
}

// normalize rewrites every '/' and '\' in path to sep, which must be a
// valid separator.
func normalize(path, sep string) string {
	target := rune(sep[0])
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return target
		}
		return r
	}, path)
}

// toWindowsStyle replaces all forward slashes with backslashes.
func toWindowsStyle(path string) string {
	return strings.ReplaceAll(path, UnixSeparator, WindowsSeparator)
}

// toUnixStyle replaces all backslashes with forward slashes.
func toUnixStyle(path string) string {
	return strings.ReplaceAll(path, WindowsSeparator, UnixSeparator)
}

func isDriveLetter(c byte) bool {
	upper := c &^ 0x20
	return upper >= 'A' && upper <= 'Z'
}

// isDriveComponent reports whether component is a bare drive marker such as "C:".
func isDriveComponent(component string) bool {
	return len(component) == 2 && isDriveLetter(component[0]) && component[1] == ':'
}

// splitRoot splits a normalized path into its root marker and the remainder.
// The root is either sep itself or a drive marker "X:" followed by sep.
func splitRoot(path, sep string) (root, rest string, ok bool) {
	if strings.HasPrefix(path, sep) {
		return sep, path[len(sep):], true
	}
	if len(path) >= 3 && isDriveComponent(path[:2]) && path[2] == sep[0] {
		return path[:3], path[3:], true
	}
	return "", path, false
}

// hasComponentPrefix reports whether prefix names path itself or one of its
// ancestors. Unlike strings.HasPrefix, "/home/user" is not a prefix of
// "/home/username".
func hasComponentPrefix(path, prefix, sep string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) || strings.HasSuffix(prefix, sep) {
		return true
	}
	return strings.HasPrefix(path[len(prefix):], sep)
}
