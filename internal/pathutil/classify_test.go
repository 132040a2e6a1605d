package pathutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === IsRelative / IsAbsolute Tests ===

func TestIsRelative(t *testing.T) {
	r := New()

	tests := []struct {
		path     string
		relative bool
	}{
		{"relative/path", true},
		{"./local", true},
		{"file.txt", true},
		{"/a/./b", true},
		{"/a/../b", true},
		{`C:\a\..\b`, true},
		{"C:foo", true},
		{"1:/x", true},
		{"/home/user", false},
		{`\home\user`, false},
		{`C:\Users\dev`, false},
		{"d:/data", false},
		{"c:", false},
		{`\\server\share`, false},
		{"/", false},
		// An empty first component is read as a root marker.
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.relative, r.IsRelative(tt.path))
			assert.Equal(t, !tt.relative, r.IsAbsolute(tt.path))
		})
	}
}

func TestIsRelative_SeparatorIndependent(t *testing.T) {
	unix := New(WithSeparator(UnixSeparator))
	windows := New(WithSeparator(WindowsSeparator))

	for _, p := range []string{"a/b", `a\b`, "/a", `\a`, `C:\a`, "C:/a", "../a", `..\a`} {
		assert.Equal(t, unix.IsRelative(p), windows.IsRelative(p), "path %q", p)
	}
}

func TestIsRelative_PackageLevel(t *testing.T) {
	assert.True(t, IsRelative("a/b"))
	assert.True(t, IsAbsolute("/a/b"))
}

// === IsDescendant / IsAncestor Tests ===

func TestIsDescendant_Prefix(t *testing.T) {
	r := unixResolver("/home/user")

	tests := []struct {
		name     string
		path     string
		ancestor string
		expected bool
	}{
		{"nested file", "/home/user/project/file.txt", "/home/user", true},
		{"same path", "/home/user", "/home/user", true},
		{"sibling sharing a prefix", "/home/user2", "/home/user", true},
		{"parent is not a descendant", "/home", "/home/user", false},
		{"unrelated", "/var/log", "/home", false},
		{"relative path under working dir", "project/src", "/home/user", true},
		{"relative ancestor", "/home/user/project", "project", true},
		{"resolved before comparison", "/home/user/../other", "/home/user", false},
		{"everything is under root", "/etc", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.IsDescendant(tt.path, tt.ancestor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsDescendant_Component(t *testing.T) {
	r := unixResolver("/home/user", WithAncestryMode(AncestryComponent))

	tests := []struct {
		name     string
		path     string
		ancestor string
		expected bool
	}{
		{"nested file", "/home/user/project/file.txt", "/home/user", true},
		{"same path", "/home/user", "/home/user", true},
		{"sibling sharing a prefix", "/home/user2", "/home/user", false},
		{"everything is under root", "/etc", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.IsDescendant(tt.path, tt.ancestor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsDescendant_WindowsDrives(t *testing.T) {
	r := windowsResolver(`C:\Users\dev`, WithAncestryMode(AncestryComponent))

	result, err := r.IsDescendant(`C:\Users\dev\project`, "c:/Users")
	require.NoError(t, err)
	assert.False(t, result, "drive letter case is significant")

	result, err = r.IsDescendant("project", `C:\Users`)
	require.NoError(t, err)
	assert.True(t, result)

	result, err = r.IsDescendant(`D:\Users\dev`, `C:\Users`)
	require.NoError(t, err)
	assert.False(t, result)
}

func TestIsAncestor_MirrorsIsDescendant(t *testing.T) {
	for _, mode := range []AncestryMode{AncestryPrefix, AncestryComponent} {
		r := unixResolver("/home/user", WithAncestryMode(mode))
		pairs := [][2]string{
			{"/home/user", "/home/user/project"},
			{"/home/user", "/home/user2"},
			{"/home/user/project", "/home/user"},
			{"docs", "docs/a.md"},
		}
		for _, pair := range pairs {
			ancestor, err := r.IsAncestor(pair[0], pair[1])
			require.NoError(t, err)
			descendant, err := r.IsDescendant(pair[1], pair[0])
			require.NoError(t, err)
			assert.Equal(t, descendant, ancestor, "mode %s: %q vs %q", mode, pair[0], pair[1])
		}
	}
}

func TestIsDescendant_WorkingDirError(t *testing.T) {
	r := New(WithWorkingDir(func() (string, error) { return "", errors.New("removed") }))

	_, err := r.IsDescendant("relative", "/")
	assert.ErrorIs(t, err, ErrWorkingDir)

	_, err = r.IsAncestor("relative", "/")
	assert.ErrorIs(t, err, ErrWorkingDir)
}
