package semantic

import "github.com/cwbudde/go-tlc/internal/ast"

// Pass represents one traversal of the program: either the validation
// pass or the emission pass, sharing the same node-kind dispatch (spec §4.4
// / §9, "the dual-pass design is canonical intent").
type Pass interface {
	// Name identifies the pass for logging and CLI --verbose output.
	Name() string

	// Run walks program, reading and writing ctx. It returns an error only
	// for fatal internal failures; semantic errors are collected into
	// ctx.Diagnostics, not returned.
	Run(program *ast.Program, ctx *Context) error
}

// Runner executes a sequence of passes over one Context. Emission is
// skipped once the validation pass has recorded any diagnostic (spec §7:
// "a traversal that records any diagnostic must not proceed to emission").
type Runner struct {
	passes []Pass
}

// NewRunner creates a Runner executing passes in the given order.
func NewRunner(passes ...Pass) *Runner {
	return &Runner{passes: passes}
}

// RunAll executes every pass in order, stopping before any pass that would
// run after diagnostics have already been recorded.
func (r *Runner) RunAll(program *ast.Program, ctx *Context) error {
	for _, p := range r.passes {
		if ctx.HasDiagnostics() {
			break
		}
		if err := p.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}
