package pathutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelative_Positional(t *testing.T) {
	r := unixResolver("/home/user/work")

	tests := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{"sibling directory", "/a/b", "/a/c/d", "../c/d"},
		{"child", "/a", "/a/b", "b"},
		{"parent", "/a/b/c", "/a", "../../"},
		{"same location", "/a/b", "/a/b", ""},
		{"from root", "/", "/a", "../a"},
		{"to root", "/a", "/", "../"},
		{"relative inputs", "src", "docs/x", "../docs/x"},
		{"unnormalized inputs", "/a/./b/../c", "/a//d/", "../d"},
		{"mixed separators", `\a\b`, "/a/c", "../c"},
		// Index 2 holds "a" in both paths after they diverged at index 1,
		// so it is treated as shared.
		{"reconverging components", "/x/a/b", "/y/a/c", "../../y/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Relative(tt.from, tt.to, UnixSeparator)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRelative_CommonPrefix(t *testing.T) {
	r := unixResolver("/home/user/work", WithDiffMode(DiffCommonPrefix))

	tests := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{"sibling directory", "/a/b", "/a/c/d", "../c/d"},
		{"child", "/a", "/a/b", "b"},
		{"parent", "/a/b/c", "/a", "../../"},
		{"same location", "/a/b", "/a/b", ""},
		{"from root", "/", "/a", "a"},
		{"to root", "/a", "/", "../"},
		{"reconverging components", "/x/a/b", "/y/a/c", "../../../y/a/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Relative(tt.from, tt.to, UnixSeparator)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRelative_Windows(t *testing.T) {
	r := windowsResolver(`C:\Users\dev`)

	result, err := r.Relative(`C:\Users\dev\project`, `C:\Users\dev\docs\readme.md`, WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `..\docs\readme.md`, result)

	result, err = r.Relative("project", "project/src", WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, "src", result)
}

func TestRelative_AcrossDrives(t *testing.T) {
	r := windowsResolver(`C:\Users\dev`)

	result, err := r.Relative(`C:\foo\bar`, `D:\baz`, WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `D:\baz`, result)

	result, err = r.Relative(`C:\`, "d:/x/y", WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `d:\x\y`, result)
}

func TestRelative_AcrossDrivesWithSharedSegments(t *testing.T) {
	from, to := `C:\a`, `D:\a`

	// Positional comparison sees "a" at index 1 in both paths.
	positional := windowsResolver(`C:\`)
	result, err := positional.Relative(from, to, WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `..\D:`, result)

	commonPrefix := windowsResolver(`C:\`, WithDiffMode(DiffCommonPrefix))
	result, err = commonPrefix.Relative(from, to, WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `D:\a`, result)
}

func TestRelative_AcrossRootStyles(t *testing.T) {
	r := windowsResolver(`C:\`)

	result, err := r.Relative(`\srv\data`, `E:\data`, WindowsSeparator)
	require.NoError(t, err)
	assert.Equal(t, `E:\data`, result)
}

func TestRelative_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"/a/b", "/a/c/d"},
		{"/a", "/a/b/c"},
		{"/a/b/c", "/a"},
		{"/a/b", "/a/b"},
		{"/", "/x/y"},
		{"/x/y", "/"},
		{"/p/q/r", "/s/t"},
		{"/a/b/c/d", "/a/b/e"},
	}

	modes := []DiffMode{DiffPositional, DiffCommonPrefix}
	for _, mode := range modes {
		r := unixResolver("/home", WithDiffMode(mode))
		for _, pair := range pairs {
			from, to := pair[0], pair[1]
			rel, err := r.Relative(from, to, UnixSeparator)
			require.NoError(t, err)

			back, err := r.Absolute(from+UnixSeparator+rel, UnixSeparator)
			require.NoError(t, err)
			want, err := r.Absolute(to, UnixSeparator)
			require.NoError(t, err)
			assert.Equal(t, want, back, "mode %s: %q -> %q via %q", mode, from, to, rel)
		}
	}
}

func TestRelative_RoundTripReconverging(t *testing.T) {
	// Only the common-prefix comparison survives a round trip when the
	// paths share a component at the same index after diverging.
	r := unixResolver("/", WithDiffMode(DiffCommonPrefix))

	rel, err := r.Relative("/x/a/b", "/y/a/c", UnixSeparator)
	require.NoError(t, err)
	back, err := r.Absolute("/x/a/b/"+rel, UnixSeparator)
	require.NoError(t, err)
	assert.Equal(t, "/y/a/c", back)
}

func TestRelative_WorkingDirError(t *testing.T) {
	r := New(WithWorkingDir(func() (string, error) { return "", errors.New("denied") }))

	_, err := r.Relative("a", "/b", UnixSeparator)
	assert.ErrorIs(t, err, ErrWorkingDir)

	_, err = r.Relative("/a", "b", UnixSeparator)
	assert.ErrorIs(t, err, ErrWorkingDir)
}

func TestPositionalDiff(t *testing.T) {
	up, down := positionalDiff([]string{"", "a", "b"}, []string{"", "a", "c", "d"})
	assert.Equal(t, 1, up)
	assert.Equal(t, []string{"c", "d"}, down)

	up, down = positionalDiff([]string{"", "a"}, []string{"", "a"})
	assert.Equal(t, 0, up)
	assert.Empty(t, down)
}

func TestComponents(t *testing.T) {
	assert.Equal(t, []string{""}, components("/", UnixSeparator))
	assert.Equal(t, []string{"", "a", "b"}, components("/a/b", UnixSeparator))
	assert.Equal(t, []string{"C:"}, components(`C:\`, WindowsSeparator))
	assert.Equal(t, []string{"C:", "x"}, components(`C:\x`, WindowsSeparator))
}
