package pathutil

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkingDir is matched by every failure to obtain an anchor for a
	// relative path.
	ErrWorkingDir = errors.New("cannot determine working directory")

	// ErrUnrootedWorkingDir is returned when the working directory is itself
	// a relative path and therefore cannot anchor anything.
	ErrUnrootedWorkingDir = errors.New("working directory has no root")
)

// WorkingDirError reports that a relative path could not be anchored.
type WorkingDirError struct {
	Err error
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("%s: %v", ErrWorkingDir, e.Err)
}

// Unwrap exposes both ErrWorkingDir and the underlying cause.
func (e *WorkingDirError) Unwrap() []error {
	return []error{ErrWorkingDir, e.Err}
}
