// Package emit implements the second pass of the traversal: lowering a
// validated AST to Lua source text. It assumes ValidatePass has already run
// with zero diagnostics (enforced by semantic.Runner) and performs no type
// checking of its own, mirroring original_source/src/traversal.c's
// process_node dispatcher, which emits unconditionally once the program has
// type-checked.
package emit

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/semantic"
)

// EmitPass lowers the program to Lua source, writing the result to
// ctx.EmittedSource.
type EmitPass struct{}

// NewEmitPass creates the emission pass.
func NewEmitPass() *EmitPass { return &EmitPass{} }

func (p *EmitPass) Name() string { return "emit" }

func (p *EmitPass) Run(program *ast.Program, ctx *semantic.Context) error {
	e := &emitter{}
	for _, stmt := range program.Statements {
		e.statement(stmt, 0)
	}
	ctx.EmittedSource = e.sb.String()
	return nil
}

type emitter struct {
	sb strings.Builder
}

func (e *emitter) indent(depth int) {
	e.sb.WriteString(strings.Repeat("  ", depth))
}

func (e *emitter) line(depth int, format string, args ...interface{}) {
	e.indent(depth)
	fmt.Fprintf(&e.sb, format, args...)
	e.sb.WriteString("\n")
}

func (e *emitter) statement(stmt ast.Statement, depth int) {
	switch n := stmt.(type) {
	case *ast.StatementList:
		for _, s := range n.Statements {
			e.statement(s, depth)
		}
	case *ast.DoBlock:
		e.line(depth, "do")
		e.statement(n.Body, depth+1)
		e.line(depth, "end")
	case *ast.ExpressionStatement:
		e.line(depth, "%s", e.expr(n.Expr))
	case *ast.Label:
		e.line(depth, "::%s::", n.Name)
	case *ast.Goto:
		e.line(depth, "goto %s", n.Name)
	case *ast.Break:
		e.line(depth, "break")
	case *ast.RepeatStmt:
		e.line(depth, "repeat")
		e.statement(n.Body, depth+1)
		e.line(depth, "until %s", e.expr(n.Cond))
	case *ast.WhileStmt:
		e.line(depth, "while %s do", e.expr(n.Cond))
		e.statement(n.Body, depth+1)
		e.line(depth, "end")
	case *ast.IfStmt:
		e.line(depth, "if %s then", e.expr(n.Cond))
		e.statement(n.Then, depth+1)
		for _, ei := range n.ElseIfs {
			e.line(depth, "elseif %s then", e.expr(ei.Cond))
			e.statement(ei.Body, depth+1)
		}
		if n.Else != nil {
			e.line(depth, "else")
			e.statement(n.Else, depth+1)
		}
		e.line(depth, "end")
	case *ast.ForNumeric:
		if n.Step != nil {
			e.line(depth, "for %s = %s, %s, %s do", n.Var.Name, e.expr(n.Start), e.expr(n.Limit), e.expr(n.Step))
		} else {
			e.line(depth, "for %s = %s, %s do", n.Var.Name, e.expr(n.Start), e.expr(n.Limit))
		}
		e.statement(n.Body, depth+1)
		e.line(depth, "end")
	case *ast.ForIn:
		names := make([]string, len(n.Names.Names))
		for i, id := range n.Names.Names {
			names[i] = id.Name
		}
		e.line(depth, "for %s in %s do", strings.Join(names, ", "), e.expr(n.Source))
		e.statement(n.Body, depth+1)
		e.line(depth, "end")
	case *ast.Typedef:
		// Type annotations are compile-time-only; a typedef has no runtime
		// representation in emitted Lua.
	case *ast.InterfaceDecl:
		// Interfaces are erased entirely at emission (compile-time-only).
	case *ast.ClassDecl:
		e.classDecl(n, depth)
	case *ast.FunctionNode:
		e.functionDecl(n, depth)
	case *ast.Define:
		e.define(n, depth)
	case *ast.Local:
		e.local(n, depth)
	case *ast.Set:
		e.line(depth, "%s = %s", e.expr(n.LHS), e.expr(n.RHS))
	case *ast.Return:
		if n.Value == nil {
			e.line(depth, "return")
		} else {
			e.line(depth, "return %s", e.expr(n.Value))
		}
	default:
		e.line(depth, "-- unhandled statement %T", stmt)
	}
}

func (e *emitter) define(n *ast.Define, depth int) {
	if n.Init != nil {
		e.line(depth, "local %s = %s", n.Name.Name, e.expr(n.Init))
	} else {
		e.line(depth, "local %s", n.Name.Name)
	}
}

func (e *emitter) local(n *ast.Local, depth int) {
	if n.Init != nil {
		e.line(depth, "local %s = %s", n.Name.Name, e.expr(n.Init))
	} else {
		e.line(depth, "local %s", n.Name.Name)
	}
}

func (e *emitter) functionDecl(n *ast.FunctionNode, depth int) {
	name := ""
	if n.Name != nil {
		name = " " + n.Name.Name
	}
	e.line(depth, "function%s(%s)", name, e.paramList(n.Params))
	if n.Body != nil {
		e.statement(n.Body, depth+1)
	}
	e.line(depth, "end")
}

func (e *emitter) paramList(params []*ast.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name.Name
	}
	return strings.Join(names, ", ")
}

// classDecl lowers a class to a Lua table-of-tables with an __index
// metatable pointing at the parent's table (single-inheritance method
// chaining), a .new(...) constructor that sets the instance's metatable,
// and colon-style methods with self inserted as the receiving table
// (spec's decided class-emission-lowering scheme).
func (e *emitter) classDecl(n *ast.ClassDecl, depth int) {
	e.line(depth, "local %s = {}", n.Name)
	if n.Parent != "" {
		e.line(depth, "setmetatable(%s, { __index = %s })", n.Name, n.Parent)
	}
	e.line(depth, "%s.__index = %s", n.Name, n.Name)
	e.line(depth, "function %s.new(...)", n.Name)
	e.line(depth+1, "local self = setmetatable({}, %s)", n.Name)
	for _, m := range n.Members {
		if field, ok := m.(*ast.Define); ok && field.Init != nil {
			e.line(depth+1, "self.%s = %s", field.Name.Name, e.expr(field.Init))
		}
	}
	ctor := findConstructor(n)
	if ctor != nil {
		e.line(depth+1, "self:init(...)")
	}
	e.line(depth+1, "return self")
	e.line(depth, "end")

	for _, m := range n.Members {
		switch member := m.(type) {
		case *ast.FunctionNode:
			if member.Name == nil {
				continue
			}
			e.line(depth, "function %s:%s(%s)", n.Name, member.Name.Name, e.paramList(member.Params))
			if member.Body != nil {
				e.statement(member.Body, depth+1)
			}
			e.line(depth, "end")
		case *ast.Define:
			// Field defaults are assigned inside new (above), not at class
			// definition time; nothing to emit at the class-body level.
		}
	}
}

func findConstructor(n *ast.ClassDecl) *ast.FunctionNode {
	for _, m := range n.Members {
		if fn, ok := m.(*ast.FunctionNode); ok && fn.Name != nil && fn.Name.Name == "init" {
			return fn
		}
	}
	return nil
}

// expr renders an expression to Lua source text. Unary and binary
// expressions are always parenthesized, matching ast.Unary.String and
// ast.Binary.String (spec §9 decision carried unchanged into emission).
func (e *emitter) expr(expr ast.Expression) string {
	if expr == nil {
		return ""
	}
	switch n := expr.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.Primitive:
		return n.Text
	case *ast.Paren:
		return "(" + e.expr(n.Inner) + ")"
	case *ast.Unary:
		if n.Op == "not" {
			return "(not " + e.expr(n.Operand) + ")"
		}
		return "(" + n.Op + e.expr(n.Operand) + ")"
	case *ast.Binary:
		return "(" + e.expr(n.Left) + " " + n.Op + " " + e.expr(n.Right) + ")"
	case *ast.Field:
		return e.expr(n.Base) + "." + n.Name
	case *ast.Sub:
		return e.expr(n.Base) + "[" + e.expr(n.Index) + "]"
	case *ast.Call:
		return e.expr(n.Callee) + "(" + e.tupleArgs(n.Args) + ")"
	case *ast.TupleExpr:
		parts := make([]string, len(n.Elems))
		for i, el := range n.Elems {
			parts[i] = e.expr(el)
		}
		return strings.Join(parts, ", ")
	case *ast.LeftTuple:
		parts := make([]string, len(n.Names))
		for i, id := range n.Names {
			parts[i] = id.Name
		}
		return strings.Join(parts, ", ")
	case *ast.Table:
		return e.table(n)
	case *ast.FunctionNode:
		return e.funcLiteral(n)
	default:
		return fmt.Sprintf("--[[ unhandled expr %T ]]", expr)
	}
}

func (e *emitter) tupleArgs(t *ast.TupleExpr) string {
	if t == nil {
		return ""
	}
	return e.expr(t)
}

func (e *emitter) table(n *ast.Table) string {
	parts := make([]string, len(n.Values))
	for i, v := range n.Values {
		if n.Keys[i] != "" {
			parts[i] = n.Keys[i] + " = " + e.expr(v)
		} else {
			parts[i] = e.expr(v)
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (e *emitter) funcLiteral(n *ast.FunctionNode) string {
	var sb strings.Builder
	sb.WriteString("function(" + e.paramList(n.Params) + ")\n")
	if n.Body != nil {
		inner := &emitter{}
		inner.statement(n.Body, 1)
		sb.WriteString(inner.sb.String())
	}
	sb.WriteString("end")
	return sb.String()
}
