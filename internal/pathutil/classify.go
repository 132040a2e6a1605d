package pathutil

import (
	"strings"
)

// IsRelative reports whether path is relative. A path containing a "." or
// ".." segment anywhere is relative. Otherwise it is relative unless it
// starts with a separator or a drive marker such as "C:".
//
// The check is purely syntactic, so the empty string counts as absolute.
func (r *Resolver) IsRelative(path string) bool {
	parts := strings.Split(normalize(path, r.separator), r.separator)
	for _, part := range parts {
		if part == "." || part == ".." {
			return true
		}
	}
	return parts[0] != "" && !isDriveComponent(parts[0])
}

// IsAbsolute reports whether path is absolute. It is the negation of IsRelative.
func (r *Resolver) IsAbsolute(path string) bool {
	return !r.IsRelative(path)
}

// IsDescendant reports whether path lies under ancestor once both are made
// absolute with the default separator. A path is its own descendant.
func (r *Resolver) IsDescendant(path, ancestor string) (bool, error) {
	descendantAbs, err := r.Absolute(path, "")
	if err != nil {
		return false, err
	}
	ancestorAbs, err := r.Absolute(ancestor, "")
	if err != nil {
		return false, err
	}
	return r.contains(ancestorAbs, descendantAbs), nil
}

// IsAncestor reports whether path contains descendant once both are made
// absolute with the default separator. A path is its own ancestor.
func (r *Resolver) IsAncestor(path, descendant string) (bool, error) {
	return r.IsDescendant(descendant, path)
}

func (r *Resolver) contains(ancestor, descendant string) bool {
	if r.ancestryMode == AncestryComponent {
		return hasComponentPrefix(descendant, ancestor, r.separator)
	}
	return strings.HasPrefix(descendant, ancestor)
}
