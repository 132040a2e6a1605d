package cli

import (
	"fmt"
	"strings"
)

// CLIError represents a user-friendly error with context and suggestions.
type CLIError struct {
	Message    string
	Suggestion string
	Cause      error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	if e.Suggestion != "" {
		sb.WriteString("\n\nSuggestion: ")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLIError with a message and suggestion.
func NewCLIError(message, suggestion string) *CLIError {
	return &CLIError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapError wraps an existing error with additional context.
func WrapError(cause error, message, suggestion string) *CLIError {
	return &CLIError{
		Message:    message,
		Suggestion: suggestion,
		Cause:      cause,
	}
}

// =============================================================================
// Common CLI Errors
// =============================================================================

// ErrWorkingDirUnavailable returns an error when a relative path cannot be
// anchored because the working directory cannot be read.
func ErrWorkingDirUnavailable(cause error) *CLIError {
	return &CLIError{
		Message:    "Cannot determine the current working directory",
		Suggestion: "The directory may have been removed. Change to an existing directory or pass absolute paths",
		Cause:      cause,
	}
}

// ErrMissingArgument returns an error for a missing positional argument.
func ErrMissingArgument(name, usage string) *CLIError {
	return &CLIError{
		Message:    fmt.Sprintf("Missing argument: %s", name),
		Suggestion: fmt.Sprintf("Usage: pathkit %s", usage),
	}
}

// ErrTooManyArguments returns an error when more positional arguments are
// given than a command accepts.
func ErrTooManyArguments(usage string) *CLIError {
	return &CLIError{
		Message:    "Too many arguments",
		Suggestion: fmt.Sprintf("Usage: pathkit %s. Quote paths that contain spaces", usage),
	}
}

// ErrInvalidStyle returns an error for an unknown style name.
func ErrInvalidStyle(cause error) *CLIError {
	return &CLIError{
		Message:    "Invalid style",
		Suggestion: "Use one of windows, unix or os",
		Cause:      cause,
	}
}

// ErrInvalidMode returns an error for an unknown relative mode.
func ErrInvalidMode(cause error) *CLIError {
	return &CLIError{
		Message:    "Invalid relative mode",
		Suggestion: "Use positional or common-prefix",
		Cause:      cause,
	}
}

// ErrConfigNotFound returns an error when config file is missing.
func ErrConfigNotFound() *CLIError {
	return &CLIError{
		Message:    "Configuration file not found",
		Suggestion: "Run 'pathkit config init' to create a default configuration",
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(cause error) *CLIError {
	return &CLIError{
		Message:    "Configuration is invalid",
		Suggestion: "Check .pathkit/config.yaml, the global config and PATHKIT_* environment variables",
		Cause:      cause,
	}
}

// ErrConfigExists returns an error when init would overwrite a config.
func ErrConfigExists(path string) *CLIError {
	return &CLIError{
		Message:    fmt.Sprintf("Configuration already exists at %s", path),
		Suggestion: "Use 'pathkit config set' to change individual settings",
	}
}

// ErrUnknownConfigKey returns an error for a config key that does not exist.
func ErrUnknownConfigKey(key string) *CLIError {
	return &CLIError{
		Message:    fmt.Sprintf("Unknown config key: %s", key),
		Suggestion: fmt.Sprintf("Valid keys are: %s", strings.Join(configKeys, ", ")),
	}
}

// ErrDaemonNotRunning returns an error when the daemon is not running.
func ErrDaemonNotRunning() *CLIError {
	return &CLIError{
		Message:    "pathkit daemon is not running",
		Suggestion: "Start it with 'pathkit start'",
	}
}

// ErrDaemonAlreadyRunning returns an error when daemon is already running.
func ErrDaemonAlreadyRunning(pid int) *CLIError {
	return &CLIError{
		Message:    fmt.Sprintf("pathkit daemon is already running (PID %d)", pid),
		Suggestion: "Use 'pathkit status' to check the daemon, or 'pathkit stop' to stop it first",
	}
}

// ErrDaemonStartFailed returns an error when daemon fails to start.
func ErrDaemonStartFailed(cause error) *CLIError {
	return &CLIError{
		Message:    "Failed to start pathkit daemon",
		Suggestion: "Check that pathkitd is installed and in your PATH (go install ./cmd/pathkitd), or run 'pathkit start --foreground' to see its output",
		Cause:      cause,
	}
}

// ErrDaemonHealthTimeout returns an error when daemon doesn't respond.
func ErrDaemonHealthTimeout() *CLIError {
	return &CLIError{
		Message:    "Daemon failed to respond to health check within timeout",
		Suggestion: "The daemon may have crashed during startup. Run 'pathkit start --foreground' to see its errors",
	}
}

// ErrDaemonConnectionFailed returns an error when connection to daemon fails.
func ErrDaemonConnectionFailed(cause error) *CLIError {
	return &CLIError{
		Message:    "Cannot connect to pathkit daemon",
		Suggestion: "The daemon may still be starting or may have crashed. Check its log output",
		Cause:      cause,
	}
}
