package semantic

import (
	"testing"

	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/lexer"
	"github.com/cwbudde/go-tlc/internal/types"
)

func nameIdent(n string) *ast.Identifier {
	return &ast.Identifier{Token: lexer.Token{Type: lexer.IDENT, Literal: n}, Name: n}
}

func method(name string, args []ast.TypeNode, ret ast.TypeNode, hasBody bool) *ast.FunctionNode {
	fn := &ast.FunctionNode{Name: nameIdent(name), ReturnType: ret}
	for _, a := range args {
		fn.Params = append(fn.Params, &ast.Param{Name: nameIdent("p"), Type: a})
	}
	if hasBody {
		fn.Body = &ast.StatementList{}
	}
	return fn
}

func TestMissingMethodsScenarioS3Satisfied(t *testing.T) {
	reg := types.NewTypeRegistry()
	eq := &ast.InterfaceDecl{
		Name:    "Eq",
		Methods: []*ast.FunctionNode{method("equals", []ast.TypeNode{&ast.AnyTypeExpr{}}, &ast.BasicTypeExpr{Name: "bool"}, false)},
	}
	reg.RegisterInterface(eq)

	c := &ast.ClassDecl{
		Name:       "C",
		Interfaces: []string{"Eq"},
		Members: []ast.Statement{
			method("equals", []ast.TypeNode{&ast.AnyTypeExpr{}}, &ast.BasicTypeExpr{Name: "bool"}, true),
		},
	}
	reg.RegisterClass(c)

	missing := MissingMethods(reg, c)
	if len(missing) != 0 {
		t.Fatalf("expected no missing methods, got %v", missing)
	}
}

func TestMissingMethodsScenarioS4Mismatch(t *testing.T) {
	reg := types.NewTypeRegistry()
	eq := &ast.InterfaceDecl{
		Name:    "Eq",
		Methods: []*ast.FunctionNode{method("equals", []ast.TypeNode{&ast.AnyTypeExpr{}}, &ast.BasicTypeExpr{Name: "bool"}, false)},
	}
	reg.RegisterInterface(eq)

	c := &ast.ClassDecl{
		Name:       "C",
		Interfaces: []string{"Eq"},
		Members: []ast.Statement{
			method("equals", []ast.TypeNode{&ast.BasicTypeExpr{Name: "int"}}, &ast.BasicTypeExpr{Name: "bool"}, true),
		},
	}
	reg.RegisterClass(c)

	missing := MissingMethods(reg, c)
	if len(missing) != 1 {
		t.Fatalf("expected exactly one missing method, got %d", len(missing))
	}
	if missing[0].Name.Name != "equals" {
		t.Fatalf("expected missing method 'equals', got %q", missing[0].Name.Name)
	}
}

func TestMissingMethodsViaAncestorClass(t *testing.T) {
	reg := types.NewTypeRegistry()
	eq := &ast.InterfaceDecl{
		Name:    "Eq",
		Methods: []*ast.FunctionNode{method("equals", nil, &ast.BasicTypeExpr{Name: "bool"}, false)},
	}
	reg.RegisterInterface(eq)

	base := &ast.ClassDecl{
		Name:    "Base",
		Members: []ast.Statement{method("equals", nil, &ast.BasicTypeExpr{Name: "bool"}, true)},
	}
	reg.RegisterClass(base)

	derived := &ast.ClassDecl{Name: "Derived", Parent: "Base", Interfaces: []string{"Eq"}}
	reg.RegisterClass(derived)

	if missing := MissingMethods(reg, derived); len(missing) != 0 {
		t.Fatalf("expected ancestor's method to satisfy the interface, got %v", missing)
	}
}

// S3-void: a void (no declared return type) interface method correctly
// implemented by a void class method must not be reported missing.
// Two nil Returns (FuncTypeOf's void sentinel) must compare equal, which
// the registry's returnTypesMatch handles before any TypedMatch call.
func TestMissingMethodsVoidMethodSatisfied(t *testing.T) {
	reg := types.NewTypeRegistry()
	eq := &ast.InterfaceDecl{
		Name:    "Runner",
		Methods: []*ast.FunctionNode{method("run", nil, nil, false)},
	}
	reg.RegisterInterface(eq)

	c := &ast.ClassDecl{
		Name:       "C",
		Interfaces: []string{"Runner"},
		Members: []ast.Statement{
			method("run", nil, nil, true),
		},
	}
	reg.RegisterClass(c)

	missing := MissingMethods(reg, c)
	if len(missing) != 0 {
		t.Fatalf("expected the void run() method to satisfy the interface, got %v", missing)
	}
}

func TestMissingMethodsViaInterfaceInheritance(t *testing.T) {
	reg := types.NewTypeRegistry()
	base := &ast.InterfaceDecl{
		Name:    "Base",
		Methods: []*ast.FunctionNode{method("foo", nil, nil, false)},
	}
	reg.RegisterInterface(base)
	derived := &ast.InterfaceDecl{Name: "Derived", Parent: "Base"}
	reg.RegisterInterface(derived)

	c := &ast.ClassDecl{Name: "C", Interfaces: []string{"Derived"}}
	reg.RegisterClass(c)

	missing := MissingMethods(reg, c)
	if len(missing) != 1 || missing[0].Name.Name != "foo" {
		t.Fatalf("expected the base interface's method to be required transitively, got %v", missing)
	}
}
