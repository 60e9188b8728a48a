// Package ast defines the closed set of AST node kinds produced by the
// parser and consumed by the semantic traversal. Every node is a concrete
// struct implementing Node (and either Expression or Statement); there is
// no dynamic payload, and dispatch over node kind is done with a Go type
// switch rather than a tagged enum.
package ast

import (
	"strings"

	"github.com/cwbudde/go-tlc/internal/lexer"
)

// Node is the common interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is implemented by nodes that can appear in expression
// position and produce a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by nodes that can appear in a statement
// sequence.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a parsed source file: an ordered statement list.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// StatementList is an ordered sequence of statements, used as the body of
// functions, blocks, and control-flow constructs.
type StatementList struct {
	Token      lexer.Token
	Statements []Statement
}

func (s *StatementList) statementNode()       {}
func (s *StatementList) TokenLiteral() string { return s.Token.Literal }
func (s *StatementList) Pos() lexer.Position  { return s.Token.Pos }
func (s *StatementList) String() string {
	var sb strings.Builder
	for _, stmt := range s.Statements {
		for _, line := range strings.Split(stmt.String(), "\n") {
			if line == "" {
				continue
			}
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// DoBlock is a "do ... end" block statement.
type DoBlock struct {
	Token lexer.Token
	Body  *StatementList
}

func (d *DoBlock) statementNode()       {}
func (d *DoBlock) TokenLiteral() string { return d.Token.Literal }
func (d *DoBlock) Pos() lexer.Position  { return d.Token.Pos }
func (d *DoBlock) String() string {
	return "do\n" + d.Body.String() + "end"
}

// ExpressionStatement wraps an expression used in statement position (most
// commonly a Call).
type ExpressionStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expr == nil {
		return ""
	}
	return e.Expr.String()
}

// Identifier is a bare name reference.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Name }

// Label is a "::name::" goto target.
type Label struct {
	Token lexer.Token
	Name  string
}

func (l *Label) statementNode()       {}
func (l *Label) TokenLiteral() string { return l.Token.Literal }
func (l *Label) Pos() lexer.Position  { return l.Token.Pos }
func (l *Label) String() string       { return "::" + l.Name + "::" }

// Goto jumps to a named Label.
type Goto struct {
	Token lexer.Token
	Name  string
}

func (g *Goto) statementNode()       {}
func (g *Goto) TokenLiteral() string { return g.Token.Literal }
func (g *Goto) Pos() lexer.Position  { return g.Token.Pos }
func (g *Goto) String() string       { return "goto " + g.Name }

// Break exits the innermost loop.
type Break struct {
	Token lexer.Token
}

func (b *Break) statementNode()       {}
func (b *Break) TokenLiteral() string { return b.Token.Literal }
func (b *Break) Pos() lexer.Position  { return b.Token.Pos }
func (b *Break) String() string       { return "break" }

// LeftTuple is an ordered sequence of assignment/loop-binding targets.
type LeftTuple struct {
	Token lexer.Token
	Names []*Identifier
}

func (lt *LeftTuple) expressionNode()      {}
func (lt *LeftTuple) TokenLiteral() string { return lt.Token.Literal }
func (lt *LeftTuple) Pos() lexer.Position  { return lt.Token.Pos }
func (lt *LeftTuple) String() string {
	parts := make([]string, len(lt.Names))
	for i, n := range lt.Names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

// TupleExpr is an ordered sequence of expressions.
type TupleExpr struct {
	Token lexer.Token
	Elems []Expression
}

func (t *TupleExpr) expressionNode()      {}
func (t *TupleExpr) TokenLiteral() string { return t.Token.Literal }
func (t *TupleExpr) Pos() lexer.Position  { return t.Token.Pos }
func (t *TupleExpr) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// RepeatStmt is "repeat <body> until <cond>".
type RepeatStmt struct {
	Token lexer.Token
	Body  *StatementList
	Cond  Expression
}

func (r *RepeatStmt) statementNode()       {}
func (r *RepeatStmt) TokenLiteral() string { return r.Token.Literal }
func (r *RepeatStmt) Pos() lexer.Position  { return r.Token.Pos }
func (r *RepeatStmt) String() string {
	return "repeat\n" + r.Body.String() + "until " + r.Cond.String()
}

// WhileStmt is "while <cond> do <body> end".
type WhileStmt struct {
	Token lexer.Token
	Cond  Expression
	Body  *StatementList
}

func (w *WhileStmt) statementNode()       {}
func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) Pos() lexer.Position  { return w.Token.Pos }
func (w *WhileStmt) String() string {
	return "while " + w.Cond.String() + " do\n" + w.Body.String() + "end"
}

// ElseIfClause is one "elseif <cond> then <body>" arm of an IfStmt.
type ElseIfClause struct {
	Cond Expression
	Body *StatementList
}

// IfStmt is "if <cond> then <body> [elseif ...]* [else <body>] end".
type IfStmt struct {
	Token    lexer.Token
	Cond     Expression
	Then     *StatementList
	ElseIfs  []*ElseIfClause
	Else     *StatementList
}

func (i *IfStmt) statementNode()       {}
func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) Pos() lexer.Position  { return i.Token.Pos }
func (i *IfStmt) String() string {
	var sb strings.Builder
	sb.WriteString("if " + i.Cond.String() + " then\n")
	sb.WriteString(i.Then.String())
	for _, ei := range i.ElseIfs {
		sb.WriteString("elseif " + ei.Cond.String() + " then\n")
		sb.WriteString(ei.Body.String())
	}
	if i.Else != nil {
		sb.WriteString("else\n")
		sb.WriteString(i.Else.String())
	}
	sb.WriteString("end")
	return sb.String()
}

// ForNumeric is "for <var> = <start>, <limit>[, <step>] do <body> end".
type ForNumeric struct {
	Token lexer.Token
	Var   *Identifier
	Start Expression
	Limit Expression
	Step  Expression // optional, may be nil
	Body  *StatementList
}

func (f *ForNumeric) statementNode()       {}
func (f *ForNumeric) TokenLiteral() string { return f.Token.Literal }
func (f *ForNumeric) Pos() lexer.Position  { return f.Token.Pos }
func (f *ForNumeric) String() string {
	var sb strings.Builder
	sb.WriteString("for " + f.Var.String() + " = " + f.Start.String() + ", " + f.Limit.String())
	if f.Step != nil {
		sb.WriteString(", " + f.Step.String())
	}
	sb.WriteString(" do\n")
	sb.WriteString(f.Body.String())
	sb.WriteString("end")
	return sb.String()
}

// ForIn is "for <names> in <source> do <body> end".
type ForIn struct {
	Token  lexer.Token
	Names  *LeftTuple
	Source Expression
	Body   *StatementList
}

func (f *ForIn) statementNode()       {}
func (f *ForIn) TokenLiteral() string { return f.Token.Literal }
func (f *ForIn) Pos() lexer.Position  { return f.Token.Pos }
func (f *ForIn) String() string {
	return "for " + f.Names.String() + " in " + f.Source.String() + " do\n" + f.Body.String() + "end"
}

// Param is a single named, typed function parameter.
type Param struct {
	Name *Identifier
	Type TypeNode
}

func (p *Param) String() string {
	if p.Type == nil {
		return p.Name.String()
	}
	return p.Name.String() + ": " + p.Type.String()
}

// FunctionNode represents a function/procedure/method declaration or a
// function-literal expression. Name and Body are both optional: a nil Name
// marks an anonymous function literal, and a nil Body marks an interface
// method declaration (signature only).
type FunctionNode struct {
	Token      lexer.Token
	Name       *Identifier // optional
	ReturnType TypeNode    // optional; nil means untyped/void
	Params     []*Param
	Body       *StatementList // optional; nil for interface method decls
}

func (f *FunctionNode) expressionNode()      {}
func (f *FunctionNode) statementNode()       {}
func (f *FunctionNode) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionNode) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionNode) String() string {
	var sb strings.Builder
	sb.WriteString("function ")
	if f.Name != nil {
		sb.WriteString(f.Name.String())
	}
	sb.WriteString("(")
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")
	if f.ReturnType != nil {
		sb.WriteString(": " + f.ReturnType.String())
	}
	if f.Body != nil {
		sb.WriteString("\n" + f.Body.String() + "end")
	}
	return sb.String()
}

// InterfaceDecl declares a named interface with an optional parent and an
// ordered list of method signatures (FunctionNode with Body == nil).
type InterfaceDecl struct {
	Token   lexer.Token
	Name    string
	Parent  string // empty means no parent
	Methods []*FunctionNode
}

func (i *InterfaceDecl) statementNode()       {}
func (i *InterfaceDecl) TokenLiteral() string { return i.Token.Literal }
func (i *InterfaceDecl) Pos() lexer.Position  { return i.Token.Pos }
func (i *InterfaceDecl) String() string {
	var sb strings.Builder
	sb.WriteString("interface " + i.Name)
	if i.Parent != "" {
		sb.WriteString(" extends " + i.Parent)
	}
	sb.WriteString(" where\n")
	for _, m := range i.Methods {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("end")
	return sb.String()
}

// ClassDecl declares a named class with an optional parent class, an
// ordered set of implemented interface names, and an ordered member list
// (FunctionNode for methods, Define for fields).
type ClassDecl struct {
	Token      lexer.Token
	Name       string
	Parent     string // empty means no parent
	Interfaces []string
	Members    []Statement
}

func (c *ClassDecl) statementNode()       {}
func (c *ClassDecl) TokenLiteral() string { return c.Token.Literal }
func (c *ClassDecl) Pos() lexer.Position  { return c.Token.Pos }
func (c *ClassDecl) String() string {
	var sb strings.Builder
	sb.WriteString("class " + c.Name)
	if c.Parent != "" {
		sb.WriteString(" extends " + c.Parent)
	}
	if len(c.Interfaces) > 0 {
		sb.WriteString(" implements " + strings.Join(c.Interfaces, ", "))
	}
	sb.WriteString(" where\n")
	for _, m := range c.Members {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("end")
	return sb.String()
}

// Typedef introduces a new name as an alias for a type expression.
type Typedef struct {
	Token  lexer.Token
	Alias  string
	Target TypeNode
}

func (t *Typedef) statementNode()       {}
func (t *Typedef) TokenLiteral() string { return t.Token.Literal }
func (t *Typedef) Pos() lexer.Position  { return t.Token.Pos }
func (t *Typedef) String() string {
	return "typedef " + t.Alias + " -> " + t.Target.String()
}

// Define is a typed variable declaration: "var <type> <name> [= <init>]".
type Define struct {
	Token lexer.Token
	Type  TypeNode
	Name  *Identifier
	Init  Expression // optional
}

func (d *Define) statementNode()       {}
func (d *Define) TokenLiteral() string { return d.Token.Literal }
func (d *Define) Pos() lexer.Position  { return d.Token.Pos }
func (d *Define) String() string {
	s := "var " + d.Type.String() + " " + d.Name.String()
	if d.Init != nil {
		s += " = " + d.Init.String()
	}
	return s
}

// Local is an untyped variable declaration: "local <name> [= <init>]".
type Local struct {
	Token lexer.Token
	Name  *Identifier
	Init  Expression // optional
}

func (l *Local) statementNode()       {}
func (l *Local) TokenLiteral() string { return l.Token.Literal }
func (l *Local) Pos() lexer.Position  { return l.Token.Pos }
func (l *Local) String() string {
	s := "local " + l.Name.String()
	if l.Init != nil {
		s += " = " + l.Init.String()
	}
	return s
}

// Set is an assignment: "<lhs> = <rhs>".
type Set struct {
	Token lexer.Token
	LHS   Expression
	RHS   Expression
}

func (s *Set) statementNode()       {}
func (s *Set) TokenLiteral() string { return s.Token.Literal }
func (s *Set) Pos() lexer.Position  { return s.Token.Pos }
func (s *Set) String() string {
	return s.LHS.String() + " = " + s.RHS.String()
}

// Call invokes Callee with an optional argument tuple.
type Call struct {
	Token  lexer.Token
	Callee Expression
	Args   *TupleExpr // optional; nil means zero arguments
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() lexer.Position  { return c.Token.Pos }
func (c *Call) String() string {
	args := ""
	if c.Args != nil {
		args = c.Args.String()
	}
	return c.Callee.String() + "(" + args + ")"
}

// Return optionally yields a value from the enclosing function.
type Return struct {
	Token lexer.Token
	Value Expression // optional
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) Pos() lexer.Position  { return r.Token.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// Field is dot-access: "<base>.<name>".
type Field struct {
	Token lexer.Token
	Base  Expression
	Name  string
}

func (f *Field) expressionNode()      {}
func (f *Field) TokenLiteral() string { return f.Token.Literal }
func (f *Field) Pos() lexer.Position  { return f.Token.Pos }
func (f *Field) String() string       { return f.Base.String() + "." + f.Name }

// Sub is bracket-access: "<base>[<index>]".
type Sub struct {
	Token lexer.Token
	Base  Expression
	Index Expression
}

func (s *Sub) expressionNode()      {}
func (s *Sub) TokenLiteral() string { return s.Token.Literal }
func (s *Sub) Pos() lexer.Position  { return s.Token.Pos }
func (s *Sub) String() string       { return s.Base.String() + "[" + s.Index.String() + "]" }

// Paren wraps a single inner expression in explicit parentheses.
type Paren struct {
	Token lexer.Token
	Inner Expression
}

func (p *Paren) expressionNode()      {}
func (p *Paren) TokenLiteral() string { return p.Token.Literal }
func (p *Paren) Pos() lexer.Position  { return p.Token.Pos }
func (p *Paren) String() string       { return "(" + p.Inner.String() + ")" }

// Unary is a prefix operator applied to a single operand.
type Unary struct {
	Token   lexer.Token
	Op      string
	Operand Expression
}

func (u *Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Token.Literal }
func (u *Unary) Pos() lexer.Position  { return u.Token.Pos }
func (u *Unary) String() string       { return "(" + u.Op + u.Operand.String() + ")" }

// Binary is an infix operator applied to two operands.
type Binary struct {
	Token lexer.Token
	Op    string
	Left  Expression
	Right Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Token.Literal }
func (b *Binary) Pos() lexer.Position  { return b.Token.Pos }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// Table is a table constructor with parallel key/value sequences. An empty
// key at index i means the value at that index is positional (array-style)
// rather than named.
type Table struct {
	Token  lexer.Token
	Keys   []string
	Values []Expression
}

func (t *Table) expressionNode()      {}
func (t *Table) TokenLiteral() string { return t.Token.Literal }
func (t *Table) Pos() lexer.Position  { return t.Token.Pos }
func (t *Table) String() string {
	parts := make([]string, len(t.Values))
	for i, v := range t.Values {
		if t.Keys[i] != "" {
			parts[i] = t.Keys[i] + "=" + v.String()
		} else {
			parts[i] = v.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Primitive is a literal value (number, string, boolean, nil) together with
// the declared basic type name assigned to it at parse time.
type Primitive struct {
	Token     lexer.Token
	Text      string
	TypeName  string
}

func (p *Primitive) expressionNode()      {}
func (p *Primitive) TokenLiteral() string { return p.Token.Literal }
func (p *Primitive) Pos() lexer.Position  { return p.Token.Pos }
func (p *Primitive) String() string       { return p.Text }
