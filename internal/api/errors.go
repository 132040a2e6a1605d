package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// APIError represents a structured error response from the pathkit API.
// It provides clear information about what went wrong and how to fix it.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface for APIError.
func (e APIError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s. %s", e.Code, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of the error with additional details.
func (e APIError) WithDetails(details string) APIError {
	e.Details = details
	return e
}

// =============================================================================
// Request Errors
// =============================================================================

var (
	// ErrInvalidJSON is returned when the request body contains invalid JSON.
	ErrInvalidJSON = APIError{
		Code:       "INVALID_JSON",
		Message:    "Request body contains invalid JSON",
		Suggestion: "Check your JSON syntax and ensure all strings are properly quoted",
	}

	// ErrInvalidStyle is returned for an unknown style name.
	ErrInvalidStyle = APIError{
		Code:       "INVALID_STYLE",
		Message:    "Style is not supported",
		Suggestion: `Use one of "windows", "unix" or "os"`,
	}

	// ErrInvalidMode is returned for an unknown relative mode.
	ErrInvalidMode = APIError{
		Code:       "INVALID_MODE",
		Message:    "Relative mode is not supported",
		Suggestion: `Use "positional" or "common-prefix", or omit the field to use the configured mode`,
	}
)

// =============================================================================
// Resolution Errors
// =============================================================================

var (
	// ErrWorkingDirUnavailable is returned when a relative path has to be
	// anchored but the daemon's working directory cannot be read.
	ErrWorkingDirUnavailable = APIError{
		Code:       "WORKING_DIR_UNAVAILABLE",
		Message:    "Cannot determine the daemon's working directory",
		Suggestion: "Send absolute paths, or restart the daemon from an existing directory",
	}

	// ErrResolutionFailed is returned for any other resolver failure.
	ErrResolutionFailed = APIError{
		Code:    "RESOLUTION_FAILED",
		Message: "Path resolution failed",
	}
)

// =============================================================================
// HTTP Response Helpers
// =============================================================================

// WriteError writes an APIError as a JSON response with the appropriate status code.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(err)
}

// WriteBadRequest writes a 400 Bad Request response with the given error.
func WriteBadRequest(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusBadRequest, err)
}

// WriteInternalError writes a 500 Internal Server Error response with the given error.
func WriteInternalError(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusInternalServerError, err)
}

// WriteResolverError maps an error returned by the resolver to a response.
func WriteResolverError(w http.ResponseWriter, err error) {
	if errors.Is(err, pathutil.ErrWorkingDir) {
		WriteInternalError(w, ErrWorkingDirUnavailable.WithDetails(err.Error()))
		return
	}
	WriteInternalError(w, ErrResolutionFailed.WithDetails(err.Error()))
}
