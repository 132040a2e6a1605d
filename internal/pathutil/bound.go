package pathutil

// Path binds a raw path string to a Resolver so several operations can be
// chained on it. Every method forwards to the Resolver; Path holds no other
// state and is never modified.
type Path struct {
	resolver *Resolver
	raw      string
}

// Bind returns path bound to r.
func (r *Resolver) Bind(path string) Path {
	return Path{resolver: r, raw: path}
}

// Bind returns path bound to the default resolver.
func Bind(path string) Path {
	return defaultResolver.Bind(path)
}

// String returns the raw path as given to Bind.
func (p Path) String() string {
	return p.raw
}

// Absolute returns the absolute form of p.
func (p Path) Absolute(sep string) (string, error) {
	return p.res().Absolute(p.raw, sep)
}

// RelativeTo returns the path leading from p to dest.
func (p Path) RelativeTo(dest, sep string) (string, error) {
	return p.res().Relative(p.raw, dest, sep)
}

// RelativeFrom returns the path leading from origin to p.
func (p Path) RelativeFrom(origin, sep string) (string, error) {
	return p.res().Relative(origin, p.raw, sep)
}

func (p Path) IsAbsolute() bool {
	return p.res().IsAbsolute(p.raw)
}

func (p Path) IsRelative() bool {
	return p.res().IsRelative(p.raw)
}

// IsDescendantOf reports whether p lies under ancestor.
func (p Path) IsDescendantOf(ancestor string) (bool, error) {
	return p.res().IsDescendant(p.raw, ancestor)
}

// IsAncestorOf reports whether p contains descendant.
func (p Path) IsAncestorOf(descendant string) (bool, error) {
	return p.res().IsAncestor(p.raw, descendant)
}

func (p Path) Normalize(sep string) string {
	return p.res().Normalize(p.raw, sep)
}

func (p Path) ToWindowsStyle() string {
	return p.res().ToWindowsStyle(p.raw)
}

func (p Path) ToUnixStyle() string {
	return p.res().ToUnixStyle(p.raw)
}

func (p Path) ToOSStyle() string {
	return p.res().ToOSStyle(p.raw)
}

// res falls back to the default resolver for the zero Path.
func (p Path) res() *Resolver {
	if p.resolver == nil {
		return defaultResolver
	}
	return p.resolver
}
