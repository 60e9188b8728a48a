package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var outputFile string

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Validate and lower a tlc source file to Lua",
	Long: `build runs the full pipeline over a tlc source file: lexing, parsing,
type/scope validation, and emission. It writes the lowered Lua source to
<out_dir>/<input base name>.lua (out_dir from tlc.yaml, default the
current directory) unless -o names a different path.

Examples:
  # Build a script, writing script.lua
  tlc build script.tlc

  # Build with a custom output path
  tlc build script.tlc -o out/script.lua`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <out_dir>/<input base name>.lua)")
}

func runBuild(_ *cobra.Command, args []string) error {
	filename := args[0]
	if verbose {
		fmt.Printf("Building %s...\n", filename)
	}

	result, err := compileFile(filename, true)
	if err != nil {
		return err
	}

	if jsonOutput && len(result.reports) > 0 {
		return printJSONAndExit(result)
	}

	cfg := loadConfig()
	color := resolveColor(cfg)

	if len(result.reports) > 0 {
		printReports(result.reports, cfg, color)
		return fmt.Errorf("build failed with %d error(s)", len(result.reports))
	}

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		base := filename
		if ext != "" {
			base = strings.TrimSuffix(filename, ext)
		}
		outFile = filepath.Join(cfg.OutDir, filepath.Base(base)+".lua")
	}

	if err := os.WriteFile(outFile, []byte(result.emitted), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Lua written to %s (%d bytes), run id %s\n", outFile, len(result.emitted), result.ctx.RunID)
	} else {
		fmt.Printf("Built %s -> %s\n", filename, outFile)
	}
	return nil
}
