package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/cwbudde/go-tlc/internal/config"
	"github.com/cwbudde/go-tlc/internal/diag"
	"github.com/cwbudde/go-tlc/internal/emit"
	"github.com/cwbudde/go-tlc/internal/lexer"
	"github.com/cwbudde/go-tlc/internal/parser"
	"github.com/cwbudde/go-tlc/internal/semantic"
)

// compileResult is the outcome of running the lex/parse/validate/emit
// pipeline over one source file.
type compileResult struct {
	ctx      *semantic.Context
	reports  []*diag.Report
	emitted  string
	filename string
	source   string
}

// compileFile runs the full pipeline (lex, parse, validate, optionally
// emit) over filename. withEmit controls whether EmitPass runs after a
// clean validation; check only ever validates.
func compileFile(filename string, withEmit bool) (*compileResult, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	runID := uuid.NewString()
	ctx := semantic.NewContext()
	ctx.RunID = runID

	result := &compileResult{ctx: ctx, filename: filename, source: input}

	if lexErrs := p.LexerErrors(); len(lexErrs) > 0 {
		for _, d := range diag.LexerErrorsToDiagnostics(lexErrs) {
			result.reports = append(result.reports, diag.NewReport(d, input, filename))
		}
		return result, nil
	}

	if perrs := p.Errors(); len(perrs) > 0 {
		for _, perr := range perrs {
			d := &semantic.Diagnostic{Kind: "ParseError", Message: perr.Message, Pos: perr.Pos}
			result.reports = append(result.reports, diag.NewReport(d, input, filename))
		}
		return result, nil
	}

	passes := []semantic.Pass{semantic.NewValidatePass()}
	if withEmit {
		passes = append(passes, emit.NewEmitPass())
	}
	runner := semantic.NewRunner(passes...)

	if err := runner.RunAll(program, ctx); err != nil {
		return nil, fmt.Errorf("internal error compiling %s: %w", filename, err)
	}

	for _, d := range ctx.Diagnostics {
		result.reports = append(result.reports, diag.NewReport(d, input, filename))
	}
	if withEmit && !ctx.HasDiagnostics() {
		result.emitted = ctx.EmittedSource
	}
	return result, nil
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError("reading %s: %v", configPath, err)
	}
	return cfg
}

func resolveColor(cfg *config.Config) bool {
	mode := colorMode
	if mode == "auto" && cfg.Color != "" {
		mode = cfg.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return diag.ColorEnabled(os.Stderr.Fd())
	}
}

// printJSONAndExit writes result's diagnostics as a single JSON batch to
// stdout, correlated by result.ctx.RunID, and returns a non-nil error iff
// there were any diagnostics (so the command exits non-zero on failure
// while still having printed the batch).
func printJSONAndExit(result *compileResult) error {
	payload, err := diag.MarshalJSON(result.reports, result.ctx.RunID)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics as JSON: %w", err)
	}
	fmt.Println(string(payload))
	if len(result.reports) > 0 {
		return fmt.Errorf("failed with %d error(s)", len(result.reports))
	}
	return nil
}

// printReports renders every report in reports to stderr, surrounding each
// offending line with cfg.ContextLines of source context.
func printReports(reports []*diag.Report, cfg *config.Config, color bool) {
	if len(reports) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "compilation failed with %d error(s):\n\n", len(reports))
	for i, r := range reports {
		fmt.Fprintf(os.Stderr, "[%d of %d]\n", i+1, len(reports))
		fmt.Fprint(os.Stderr, r.FormatWithContext(cfg.ContextLines, color))
		if i < len(reports)-1 {
			fmt.Fprintln(os.Stderr)
		}
	}
}
