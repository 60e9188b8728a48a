package ast

import (
	"testing"

	"github.com/cwbudde/go-tlc/internal/lexer"
)

func ident(name string) *Identifier {
	return &Identifier{Token: lexer.Token{Type: lexer.IDENT, Literal: name}, Name: name}
}

func TestDefineString(t *testing.T) {
	d := &Define{
		Token: lexer.Token{Type: lexer.VAR, Literal: "var"},
		Type:  &BasicTypeExpr{Name: "int"},
		Name:  ident("x"),
		Init:  &Primitive{Text: "3", TypeName: "int"},
	}
	want := "var int x = 3"
	if got := d.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClassDeclString(t *testing.T) {
	c := &ClassDecl{
		Token:      lexer.Token{Type: lexer.CLASS, Literal: "class"},
		Name:       "C",
		Interfaces: []string{"Eq"},
		Members: []Statement{
			&FunctionNode{
				Token: lexer.Token{Type: lexer.FUNCTION, Literal: "function"},
				Name:  ident("equals"),
				Params: []*Param{
					{Name: ident("other"), Type: &AnyTypeExpr{}},
				},
				ReturnType: &BasicTypeExpr{Name: "bool"},
			},
		},
	}
	out := c.String()
	if out == "" {
		t.Fatal("expected non-empty String()")
	}
}

func TestBinaryAlwaysParenthesises(t *testing.T) {
	b := &Binary{
		Op:   "+",
		Left: &Primitive{Text: "1"},
		Right: &Binary{
			Op:    "*",
			Left:  &Primitive{Text: "2"},
			Right: &Primitive{Text: "3"},
		},
	}
	want := "(1 + (2 * 3))"
	if got := b.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFuncTypeExprString(t *testing.T) {
	ft := &FuncTypeExpr{
		Return: &BasicTypeExpr{Name: "bool"},
		Args:   []TypeNode{&AnyTypeExpr{}},
	}
	want := "bool(any)"
	if got := ft.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
