package pathutil

import (
	"fmt"
	"strings"
)

// Absolute returns the absolute form of path without consulting the
// filesystem. Separators are rewritten to sep, relative paths are anchored to
// the working directory, empty and "." segments are dropped and ".." removes
// the preceding segment. A ".." at the root is absorbed, so the result never
// escapes its root marker.
//
// The only failure is an unavailable working directory, and it only occurs
// when path is relative.
func (r *Resolver) Absolute(path, sep string) (string, error) {
	sep = r.separatorOr(sep)
	path = normalize(path, sep)

	root, rest, ok := splitRoot(path, sep)
	if !ok {
		wd, err := r.workingDir()
		if err != nil {
			return "", &WorkingDirError{Err: err}
		}
		r.logger.Debug("anchoring relative path", "path", path, "working_dir", wd)

		root, rest, ok = splitRoot(normalize(wd, sep)+sep+path, sep)
		if !ok {
			return "", &WorkingDirError{Err: fmt.Errorf("%w: %q", ErrUnrootedWorkingDir, wd)}
		}
	}

	segments := make([]string, 0, strings.Count(rest, sep)+1)
	for _, segment := range strings.Split(rest, sep) {
		switch segment {
		case "", ".":
		case "..":
			if len(segments) == 0 {
				r.logger.Debug("absorbing parent reference at root", "root", root)
				continue
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, segment)
		}
	}

	return root + strings.Join(segments, sep), nil
}
