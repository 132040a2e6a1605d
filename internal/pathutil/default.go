package pathutil

var defaultResolver = New()

// Default returns the resolver used by the package-level functions. It
// formats with the host separator and reads os.Getwd on every call.
func Default() *Resolver {
	return defaultResolver
}

// Normalize rewrites the separators of path to sep, or to the host
// separator when sep is empty or invalid.
func Normalize(path, sep string) string {
	return defaultResolver.Normalize(path, sep)
}

// Absolute calls Default().Absolute.
func Absolute(path, sep string) (string, error) {
	return defaultResolver.Absolute(path, sep)
}

// Relative calls Default().Relative.
func Relative(from, to, sep string) (string, error) {
	return defaultResolver.Relative(from, to, sep)
}

// IsAbsolute calls Default().IsAbsolute.
func IsAbsolute(path string) bool {
	return defaultResolver.IsAbsolute(path)
}

// IsRelative calls Default().IsRelative.
func IsRelative(path string) bool {
	return defaultResolver.IsRelative(path)
}

// IsDescendant calls Default().IsDescendant.
func IsDescendant(path, ancestor string) (bool, error) {
	return defaultResolver.IsDescendant(path, ancestor)
}

// IsAncestor calls Default().IsAncestor.
func IsAncestor(path, descendant string) (bool, error) {
	return defaultResolver.IsAncestor(path, descendant)
}

// ToWindowsStyle replaces all '/' in path with '\'.
func ToWindowsStyle(path string) string {
	return toWindowsStyle(path)
}

// ToUnixStyle replaces all '\' in path with '/'.
func ToUnixStyle(path string) string {
	return toUnixStyle(path)
}

// ToOSStyle rewrites the separators of path to the host convention.
func ToOSStyle(path string) string {
	return normalize(path, OSSeparator)
}
