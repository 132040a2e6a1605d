package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// resetFlags restores every flag variable to its default so that tests do
// not leak state through the shared command tree.
func resetFlags() {
	jsonOutput = false
	verbose = false
	projectRoot = ""
	separatorFlag = ""
	relMode = ""
	componentAncestry = false
	initGlobal = false
	startForeground = false
}

// executeCmd runs the root command against project with the working
// directory pinned to wd and returns stdout, stderr and the error.
func executeCmd(t *testing.T, project, wd string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	origWorkingDir := workingDir
	workingDir = func() (string, error) { return wd, nil }
	resetFlags()
	t.Cleanup(func() {
		workingDir = origWorkingDir
		resetFlags()
	})

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--project", project}, args...))

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// run executes a command in a fresh project with working directory
// /home/dev and the Unix separator.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeCmd(t, t.TempDir(), "/home/dev", append([]string{"--separator", "/"}, args...)...)
	return out, err
}

// =============================================================================
// Root Command Tests
// =============================================================================

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "pathkit", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "pathkit")
}

func TestRootCommandFlags(t *testing.T) {
	jsonFlag := rootCmd.PersistentFlags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)

	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	projectFlag := rootCmd.PersistentFlags().Lookup("project")
	require.NotNil(t, projectFlag)
	assert.Equal(t, "p", projectFlag.Shorthand)

	separator := rootCmd.PersistentFlags().Lookup("separator")
	require.NotNil(t, separator)
	assert.Equal(t, "s", separator.Shorthand)
}

func TestCommandsRegistered(t *testing.T) {
	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range []string{"abs", "rel", "normalize", "style", "is-abs", "is-rel", "is-descendant", "is-ancestor", "config", "status", "stop", "version"} {
		assert.True(t, registered[name], "command %s should be registered", name)
	}
}

// =============================================================================
// abs / rel / normalize / style Tests
// =============================================================================

func TestAbsCmd(t *testing.T) {
	out, err := run(t, "abs", "../docs", "/a/./b/../c", `C:\x`)
	require.NoError(t, err)
	assert.Equal(t, "/home/docs\n/a/c\nC:/x\n", out)
}

func TestAbsCmd_WindowsSeparator(t *testing.T) {
	out, _, err := executeCmd(t, t.TempDir(), `C:\Users\dev`, "abs", "-s", "windows", "../shared", "D:/data/./x")
	require.NoError(t, err)
	assert.Equal(t, "C:\\Users\\shared\nD:\\data\\x\n", out)
}

func TestAbsCmd_JSON(t *testing.T) {
	out, err := run(t, "--json", "abs", "x")
	require.NoError(t, err)

	var results []PathResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []PathResult{{Path: "x", Result: "/home/dev/x"}}, results)
}

func TestAbsCmd_MissingArgument(t *testing.T) {
	_, err := run(t, "abs")
	require.Error(t, err)

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "PATH")
}

func TestAbsCmd_WorkingDirUnavailable(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags()
	orig := workingDir
	workingDir = func() (string, error) { return "", errors.New("directory removed") }
	t.Cleanup(func() {
		workingDir = orig
		resetFlags()
	})

	var outBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&outBuf)
	rootCmd.SetArgs([]string{"--project", t.TempDir(), "abs", "relative"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, pathutil.ErrWorkingDir)

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "working directory")
}

func TestRelCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"sibling", []string{"rel", "/a/b", "/a/c/d"}, "../c/d\n"},
		{"same path", []string{"rel", "/a/b", "/a/b"}, "\n"},
		{"relative inputs", []string{"rel", "src", "docs/x"}, "../docs/x\n"},
		{"positional default", []string{"rel", "/x/a/b", "/y/a/c"}, "../../y/c\n"},
		{"common prefix mode", []string{"rel", "--mode", "common-prefix", "/x/a/b", "/y/a/c"}, "../../../y/a/c\n"},
		{"across drives", []string{"rel", `C:\foo`, `D:\baz`}, "D:/baz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRelCmd_JSON(t *testing.T) {
	out, err := run(t, "--json", "rel", "/a", "/a/b")
	require.NoError(t, err)

	var result RelativeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, RelativeResult{From: "/a", To: "/a/b", Mode: "positional", Result: "b"}, result)
}

func TestRelCmd_Errors(t *testing.T) {
	_, err := run(t, "rel", "/a")
	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "TO")

	_, err = run(t, "rel", "/a", "/b", "/c")
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "Too many")

	_, err = run(t, "rel", "--mode", "fuzzy", "/a", "/b")
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "relative mode")
}

func TestNormalizeCmd(t *testing.T) {
	out, _, err := executeCmd(t, t.TempDir(), "/", "normalize", "--separator", `\`, "a/b\\c", "/x")
	require.NoError(t, err)
	assert.Equal(t, "a\\b\\c\n\\x\n", out)
}

func TestStyleCmd(t *testing.T) {
	out, err := run(t, "style", "windows", "/a/b", "c/d")
	require.NoError(t, err)
	assert.Equal(t, "\\a\\b\nc\\d\n", out)

	out, err = run(t, "style", "unix", `C:\a\b`)
	require.NoError(t, err)
	assert.Equal(t, "C:/a/b\n", out)
}

func TestStyleCmd_InvalidStyle(t *testing.T) {
	_, err := run(t, "style", "mac", "/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, pathutil.ErrInvalidStyle)
}

func TestUnknownSeparatorFallsBackToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.NewLoader(dir).Save(windowsConfig()))

	out, stderr, err := executeCmd(t, dir, "/", "abs", "--separator", ":", "/a/b")
	require.NoError(t, err)
	assert.Equal(t, "\\a\\b\n", out)
	assert.Contains(t, stderr, `Unknown separator ":"`)
}

// =============================================================================
// Predicate Tests
// =============================================================================

func TestPredicates(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"absolute path", []string{"is-abs", "/a/b"}, "true\n"},
		{"dotted path is not absolute", []string{"is-abs", "/a/../b"}, "false\n"},
		{"drive path", []string{"is-abs", `C:\a`}, "true\n"},
		{"relative path", []string{"is-rel", "a/b"}, "true\n"},
		{"rooted path is not relative", []string{"is-rel", "/a"}, "false\n"},
		{"descendant", []string{"is-descendant", "/srv/app/x", "/srv/app"}, "true\n"},
		{"prefix sibling", []string{"is-descendant", "/srv/app2", "/srv/app"}, "true\n"},
		{"component sibling", []string{"is-descendant", "--component", "/srv/app2", "/srv/app"}, "false\n"},
		{"relative descendant", []string{"is-descendant", "notes", "/home/dev"}, "true\n"},
		{"ancestor", []string{"is-ancestor", "/srv", "/srv/app"}, "true\n"},
		{"not ancestor", []string{"is-ancestor", "/srv/app", "/srv"}, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPredicates_JSON(t *testing.T) {
	out, err := run(t, "--json", "is-ancestor", "/srv", "/srv/app")
	require.NoError(t, err)

	var result PredicateResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, PredicateResult{Path: "/srv", Other: "/srv/app", Result: true}, result)
}

// =============================================================================
// Version Tests
// =============================================================================

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathkit "+Version)
	assert.Contains(t, out, "Go version:")
}

func TestVersionCmd_JSON(t *testing.T) {
	out, err := run(t, "--json", "version")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

// =============================================================================
// Output Formatter Tests
// =============================================================================

func TestOutputFormatter(t *testing.T) {
	var out, errOut bytes.Buffer
	formatter := NewOutputFormatterWithWriters(&out, &errOut)

	formatter.Success("created %s", "x")
	formatter.Line("")
	formatter.Warn("careful")
	formatter.Table([]string{"Key", "Value"}, [][]string{{"a", "1"}})

	assert.Equal(t, "[OK] created x\n\nKey  Value\n---  -----\na    1\n", out.String())
	assert.Equal(t, "[WARN] careful\n", errOut.String())
}

// windowsConfig returns the default configuration with the Windows separator.
func windowsConfig() *config.Config {
	cfg := config.Default()
	cfg.Separator = "windows"
	return cfg
}
