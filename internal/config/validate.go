package config

import (
	"fmt"
	"strings"

	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// HasErrors returns true if there are any validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// validLogLevels defines the allowed log level values
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log format values
var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration for errors and returns all validation errors found
func Validate(cfg *Config) ValidationErrors {
	var errors ValidationErrors

	if cfg.Version < 1 {
		errors = append(errors, ValidationError{
			Field:   "version",
			Message: "must be at least 1",
		})
	}

	if _, err := pathutil.ParseSeparator(cfg.Separator); err != nil {
		errors = append(errors, ValidationError{
			Field:   "separator",
			Message: fmt.Sprintf("invalid separator '%s'; valid values are: auto, unix, windows, os, /, \\", cfg.Separator),
		})
	}

	if _, err := pathutil.ParseDiffMode(cfg.Relative.Mode); err != nil {
		errors = append(errors, ValidationError{
			Field:   "relative.mode",
			Message: fmt.Sprintf("invalid mode '%s'; valid values are: positional, common-prefix", cfg.Relative.Mode),
		})
	}

	if _, err := pathutil.ParseAncestryMode(cfg.Ancestry.Mode); err != nil {
		errors = append(errors, ValidationError{
			Field:   "ancestry.mode",
			Message: fmt.Sprintf("invalid mode '%s'; valid values are: prefix, component", cfg.Ancestry.Mode),
		})
	}

	if !validLogLevels[cfg.Log.Level] {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid log level '%s'; valid values are: debug, info, warn, error", cfg.Log.Level),
		})
	}
	if !validLogFormats[cfg.Log.Format] {
		errors = append(errors, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("invalid log format '%s'; valid values are: text, json", cfg.Log.Format),
		})
	}

	if cfg.Daemon.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "daemon.host",
			Message: "must not be empty",
		})
	}
	if cfg.Daemon.Port != nil && (*cfg.Daemon.Port < 0 || *cfg.Daemon.Port > 65535) {
		errors = append(errors, ValidationError{
			Field:   "daemon.port",
			Message: "must be between 0 and 65535",
		})
	}

	return errors
}

// ValidateOrError is a convenience function that returns an error if validation fails
func ValidateOrError(cfg *Config) error {
	errors := Validate(cfg)
	if errors.HasErrors() {
		return errors
	}
	return nil
}
