package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pommel-dev/pathkit/internal/pathutil"
)

// PredicateResult is the JSON form of the is-* commands.
type PredicateResult struct {
	Path   string `json:"path"`
	Other  string `json:"other,omitempty"`
	Result bool   `json:"result"`
}

var componentAncestry bool

var isAbsCmd = &cobra.Command{
	Use:   "is-abs PATH",
	Short: "Report whether PATH is absolute",
	Long: `Print true when PATH starts at a root ('/', '\' or a drive such as C:\)
and contains no "." or ".." segments, false otherwise.`,
	Args: exactArgs("is-abs PATH", "PATH"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredicate(cmd, args, func(r *pathutil.Resolver) (bool, error) {
			return r.IsAbsolute(args[0]), nil
		})
	},
}

var isRelCmd = &cobra.Command{
	Use:   "is-rel PATH",
	Short: "Report whether PATH is relative",
	Args:  exactArgs("is-rel PATH", "PATH"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredicate(cmd, args, func(r *pathutil.Resolver) (bool, error) {
			return r.IsRelative(args[0]), nil
		})
	},
}

var isDescendantCmd = &cobra.Command{
	Use:   "is-descendant PATH ANCESTOR",
	Short: "Report whether PATH lies under ANCESTOR",
	Long: `Resolve both paths and print true when PATH lies under ANCESTOR.

By default the check is a character prefix check, so /srv/app2 lies under
/srv/app. Pass --component to require a whole-segment match.`,
	Args: exactArgs("is-descendant PATH ANCESTOR", "PATH", "ANCESTOR"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredicate(cmd, args, func(r *pathutil.Resolver) (bool, error) {
			return r.IsDescendant(args[0], args[1])
		})
	},
}

var isAncestorCmd = &cobra.Command{
	Use:   "is-ancestor PATH DESCENDANT",
	Short: "Report whether DESCENDANT lies under PATH",
	Args:  exactArgs("is-ancestor PATH DESCENDANT", "PATH", "DESCENDANT"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredicate(cmd, args, func(r *pathutil.Resolver) (bool, error) {
			return r.IsAncestor(args[0], args[1])
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{isDescendantCmd, isAncestorCmd} {
		c.Flags().BoolVar(&componentAncestry, "component", false, "Compare whole path segments instead of characters")
	}

	rootCmd.AddCommand(isAbsCmd)
	rootCmd.AddCommand(isRelCmd)
	rootCmd.AddCommand(isDescendantCmd)
	rootCmd.AddCommand(isAncestorCmd)
}

// runPredicate evaluates check and prints its answer. Predicates always
// exit successfully when they can answer; only failures are errors.
func runPredicate(cmd *cobra.Command, args []string, check func(*pathutil.Resolver) (bool, error)) error {
	var extra []pathutil.Option
	if componentAncestry {
		extra = append(extra, pathutil.WithAncestryMode(pathutil.AncestryComponent))
	}

	resolver, err := newResolver(cmd, extra...)
	if err != nil {
		return err
	}

	result, err := check(resolver)
	if err != nil {
		return resolverError(err)
	}

	out := output(cmd)
	if IsJSONOutput() {
		r := PredicateResult{Path: args[0], Result: result}
		if len(args) > 1 {
			r.Other = args[1]
		}
		return out.JSON(r)
	}
	out.Line(strconv.FormatBool(result))
	return nil
}
