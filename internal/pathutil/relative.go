package pathutil

import (
	"strings"
)

// Relative returns the path that leads from the location from to the
// location to, using sep for both interpretation and output. Both arguments
// are resolved with Absolute first.
//
// The result is one "..<sep>" per component only found in from, followed by
// the components only found in to. Identical locations yield "". When the two
// paths share no component at all, as with different drives, no relative
// expression exists and the absolute form of to is returned.
func (r *Resolver) Relative(from, to, sep string) (string, error) {
	sep = r.separatorOr(sep)

	absFrom, err := r.Absolute(from, sep)
	if err != nil {
		return "", err
	}
	absTo, err := r.Absolute(to, sep)
	if err != nil {
		return "", err
	}

	var up int
	var down []string
	var toParts int
	switch r.diffMode {
	case DiffCommonPrefix:
		fromComponents := components(absFrom, sep)
		toComponents := components(absTo, sep)
		up, down = commonPrefixDiff(fromComponents, toComponents)
		toParts = len(toComponents)
	default:
		fromComponents := strings.Split(absFrom, sep)
		toComponents := strings.Split(absTo, sep)
		up, down = positionalDiff(fromComponents, toComponents)
		toParts = len(toComponents)
	}

	if len(down) == toParts {
		return absTo, nil
	}
	return strings.Repeat(".."+sep, up) + strings.Join(down, sep), nil
}

// positionalDiff counts the components of from that differ from to at the
// same index, and collects the components of to that differ from from at the
// same index. A missing index counts as a difference.
func positionalDiff(from, to []string) (up int, down []string) {
	for i, component := range from {
		if i >= len(to) || to[i] != component {
			up++
		}
	}
	for i, component := range to {
		if i >= len(from) || from[i] != component {
			down = append(down, component)
		}
	}
	return up, down
}

// commonPrefixDiff strips the longest shared leading run of components.
func commonPrefixDiff(from, to []string) (up int, down []string) {
	shared := 0
	for shared < len(from) && shared < len(to) && from[shared] == to[shared] {
		shared++
	}
	return len(from) - shared, to[shared:]
}

// components splits an absolute path into its root component followed by its
// non-empty segments. "/" yields [""] and `C:\` yields ["C:"].
func components(abs, sep string) []string {
	parts := strings.Split(abs, sep)
	out := make([]string, 1, len(parts))
	out[0] = parts[0]
	for _, part := range parts[1:] {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
