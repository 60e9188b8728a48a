package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a tlc source file without emitting Lua",
	Long: `check runs the lexer, parser, and type/scope validation pass over a
tlc source file and reports any diagnostics, without lowering to Lua.

Examples:
  tlc check script.tlc`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	filename := args[0]
	if verbose {
		fmt.Printf("Checking %s...\n", filename)
	}

	result, err := compileFile(filename, false)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSONAndExit(result)
	}

	cfg := loadConfig()
	color := resolveColor(cfg)

	if len(result.reports) > 0 {
		printReports(result.reports, cfg, color)
		return fmt.Errorf("check failed with %d error(s)", len(result.reports))
	}

	fmt.Printf("%s: OK\n", filename)
	return nil
}
