package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configPath string
	colorMode  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "tlc",
	Short: "Typed Lua compiler",
	Long: `tlc validates and lowers typed Lua source into plain Lua.

It resolves type annotations against a closed set of shapes (any, named
primitives, tuples, function types), checks classes against the
interfaces they implement, and enforces lexical scoping before emitting
host-runnable Lua with the type layer erased.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "tlc.yaml", "path to the project config file")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "diagnostic color: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as one JSON object on stdout (a generated run_id plus a diagnostics array) instead of formatted text on stderr")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
