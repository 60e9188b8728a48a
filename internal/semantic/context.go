// Package semantic implements the semantic core of the transpiler: the
// Type Registry, Scope Stack, Entity Rules, and the dual-pass AST
// Traversal (validate, then emit) that together type-check a program and
// drive the lowering to host-language source.
package semantic

import (
	"github.com/cwbudde/go-tlc/internal/types"
)

// Context is the single per-traversal object threaded through every pass
// and handler: the Type Registry, the Scope Stack, the collected
// diagnostics, and the return-type stack used to check Return statements
// against their enclosing function (spec §9, the return-type-checking TODO
// this repo implements). Context replaces module-level globals so that two
// traversals can run concurrently, each owning its own Context (spec §5).
type Context struct {
	Registry    *types.TypeRegistry
	Scopes      *ScopeStack
	Diagnostics []*Diagnostic

	// FunctionReturnTypes is a stack of declared return types, pushed when
	// entering a function body and popped on exit. Return handlers check
	// against the top entry.
	FunctionReturnTypes []types.Type

	// RunID optionally correlates a batch of diagnostics across CLI/log
	// output; set by the driver, never consulted by the traversal itself.
	RunID string

	// EmittedSource holds the lowered host-language source once EmitPass
	// has run. Empty until then.
	EmittedSource string
}

// NewContext creates a fresh per-traversal Context with an empty Scope
// Stack (root frame only) and a Type Registry pre-populated with the
// primitive types.
func NewContext() *Context {
	return &Context{
		Registry: types.NewTypeRegistry(),
		Scopes:   NewScopeStack(),
	}
}

// AddDiagnostic records d and continues; the traversal never throws on a
// semantic error (spec §7 propagation policy).
func (c *Context) AddDiagnostic(d *Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HasDiagnostics reports whether any error has been recorded. Emission is
// gated on this being false (spec §7/§8 invariant).
func (c *Context) HasDiagnostics() bool {
	return len(c.Diagnostics) > 0
}

// PushFunctionReturnType begins return-type checking for a newly entered
// function body. ret may be nil for a function with no declared return
// type.
func (c *Context) PushFunctionReturnType(ret types.Type) {
	c.FunctionReturnTypes = append(c.FunctionReturnTypes, ret)
}

// PopFunctionReturnType ends return-type checking on exit from a function
// body.
func (c *Context) PopFunctionReturnType() {
	if len(c.FunctionReturnTypes) == 0 {
		return
	}
	c.FunctionReturnTypes = c.FunctionReturnTypes[:len(c.FunctionReturnTypes)-1]
}

// CurrentFunctionReturnType returns the return type of the innermost
// enclosing function, or (nil, false) if no function is currently being
// walked (e.g. a Return at top level, which is itself a caller error to
// report separately if desired).
func (c *Context) CurrentFunctionReturnType() (types.Type, bool) {
	if len(c.FunctionReturnTypes) == 0 {
		return nil, false
	}
	return c.FunctionReturnTypes[len(c.FunctionReturnTypes)-1], true
}
