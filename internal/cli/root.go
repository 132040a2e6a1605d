package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version     = "0.1.0"
	BuildCommit = "unknown"
	BuildDate   = "unknown"

	jsonOutput    bool
	verbose       bool
	projectRoot   string
	separatorFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "pathkit - Lexical path resolution for Windows and Unix paths",
	Long: `pathkit resolves, relativizes and classifies filesystem paths purely
lexically: it never touches the filesystem, so paths that do not exist
and paths of the other platform's style work the same way.

Paths may use '/' or '\' interchangeably; results use the configured
separator, or the one given with --separator.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	rootCmd.Version = Version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "project", "p", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&separatorFlag, "separator", "s", "", `Output separator: /, \, unix, windows or os (default: from config)`)
	cobra.OnInitialize(initProjectRoot)
}

func initProjectRoot() {
	if projectRoot == "" {
		var err error
		projectRoot, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to get current directory: %v\n", err)
			os.Exit(1)
		}
	}
}

func GetProjectRoot() string {
	return projectRoot
}

func IsJSONOutput() bool {
	return jsonOutput
}

func IsVerbose() bool {
	return verbose
}
