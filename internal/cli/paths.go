package cli

import (
	"github.com/spf13/cobra"

	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// PathResult is the JSON form of a single-path transformation.
type PathResult struct {
	Path   string `json:"path"`
	Result string `json:"result"`
}

// RelativeResult is the JSON form of `pathkit rel`.
type RelativeResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Mode   string `json:"mode"`
	Result string `json:"result"`
}

var relMode string

var absCmd = &cobra.Command{
	Use:   "abs PATH...",
	Short: "Resolve paths to their absolute form",
	Long: `Resolve each PATH to an absolute path without touching the filesystem.

Relative paths are anchored to the current directory. "." segments and empty
segments are dropped and ".." removes the previous segment; a ".." at the
root is ignored.

Examples:
  pathkit abs ../docs
  pathkit abs --separator windows 'C:/Users/dev/../shared'`,
	Args: minArgs("abs PATH...", "PATH"),
	RunE: runAbs,
}

var relCmd = &cobra.Command{
	Use:   "rel FROM TO",
	Short: "Express TO relative to FROM",
	Long: `Print the path that leads from FROM to TO.

When FROM and TO are on different roots (for example different drive
letters) the absolute form of TO is printed instead.

Examples:
  pathkit rel /srv/app/static /srv/app/templates/index.html
  pathkit rel --mode common-prefix /x/a/b /y/a/c`,
	Args: exactArgs("rel FROM TO", "FROM", "TO"),
	RunE: runRel,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize PATH...",
	Short: "Rewrite every separator in PATH",
	Args:  minArgs("normalize PATH...", "PATH"),
	RunE:  runNormalize,
}

var styleCmd = &cobra.Command{
	Use:   "style {windows|unix|os} PATH...",
	Short: "Convert paths to Windows, Unix or native separators",
	Args:  minArgs("style STYLE PATH...", "STYLE", "PATH"),
	RunE:  runStyle,
}

func init() {
	relCmd.Flags().StringVar(&relMode, "mode", "", "Relative mode: positional or common-prefix (default: from config)")

	rootCmd.AddCommand(absCmd)
	rootCmd.AddCommand(relCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(styleCmd)
}

func runAbs(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver(cmd)
	if err != nil {
		return err
	}

	results := make([]PathResult, 0, len(args))
	for _, path := range args {
		abs, err := resolver.Absolute(path, "")
		if err != nil {
			return resolverError(err)
		}
		results = append(results, PathResult{Path: path, Result: abs})
	}

	return printPathResults(cmd, results)
}

func runRel(cmd *cobra.Command, args []string) error {
	var extra []pathutil.Option
	if relMode != "" {
		mode, err := pathutil.ParseDiffMode(relMode)
		if err != nil {
			return ErrInvalidMode(err)
		}
		extra = append(extra, pathutil.WithDiffMode(mode))
	}

	resolver, err := newResolver(cmd, extra...)
	if err != nil {
		return err
	}

	rel, err := resolver.Relative(args[0], args[1], "")
	if err != nil {
		return resolverError(err)
	}

	out := output(cmd)
	if IsJSONOutput() {
		return out.JSON(RelativeResult{
			From:   args[0],
			To:     args[1],
			Mode:   resolver.DiffMode().String(),
			Result: rel,
		})
	}
	out.Line(rel)
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver(cmd)
	if err != nil {
		return err
	}

	results := make([]PathResult, 0, len(args))
	for _, path := range args {
		results = append(results, PathResult{Path: path, Result: resolver.Normalize(path, "")})
	}

	return printPathResults(cmd, results)
}

func runStyle(cmd *cobra.Command, args []string) error {
	style, err := pathutil.ParseStyle(args[0])
	if err != nil {
		return ErrInvalidStyle(err)
	}

	resolver, err := newResolver(cmd)
	if err != nil {
		return err
	}

	results := make([]PathResult, 0, len(args)-1)
	for _, path := range args[1:] {
		results = append(results, PathResult{Path: path, Result: resolver.ToStyle(path, style)})
	}

	return printPathResults(cmd, results)
}

// printPathResults prints one result per line, or a JSON array.
func printPathResults(cmd *cobra.Command, results []PathResult) error {
	out := output(cmd)
	if IsJSONOutput() {
		return out.JSON(results)
	}
	for _, r := range results {
		out.Line(r.Result)
	}
	return nil
}
