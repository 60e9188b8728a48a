package ast

import (
	"strings"

	"github.com/cwbudde/go-tlc/internal/lexer"
)

// TypeNode is the closed set of type-expression shapes that can appear in
// source (type annotations on Define/Param/FunctionNode/Typedef). It is a
// tagged variant mirroring the four kinds: Any, Basic, Tuple, Func.
type TypeNode interface {
	Node
	typeNode()
}

// AnyTypeExpr is the "any" wildcard type annotation.
type AnyTypeExpr struct {
	Token lexer.Token
}

func (a *AnyTypeExpr) typeNode()           {}
func (a *AnyTypeExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AnyTypeExpr) Pos() lexer.Position  { return a.Token.Pos }
func (a *AnyTypeExpr) String() string       { return "any" }

// BasicTypeExpr names a primitive, class, interface, or alias type.
type BasicTypeExpr struct {
	Token lexer.Token
	Name  string
}

func (b *BasicTypeExpr) typeNode()           {}
func (b *BasicTypeExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BasicTypeExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BasicTypeExpr) String() string       { return b.Name }

// TupleTypeExpr is an ordered sequence of component types.
type TupleTypeExpr struct {
	Token lexer.Token
	Elems []TypeNode
}

func (t *TupleTypeExpr) typeNode()           {}
func (t *TupleTypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *TupleTypeExpr) Pos() lexer.Position  { return t.Token.Pos }
func (t *TupleTypeExpr) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FuncTypeExpr is a function signature: a return type plus argument types.
type FuncTypeExpr struct {
	Token  lexer.Token
	Return TypeNode
	Args   []TypeNode
}

func (f *FuncTypeExpr) typeNode()           {}
func (f *FuncTypeExpr) TokenLiteral() string { return f.Token.Literal }
func (f *FuncTypeExpr) Pos() lexer.Position  { return f.Token.Pos }
func (f *FuncTypeExpr) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return ret + "(" + strings.Join(parts, ", ") + ")"
}
