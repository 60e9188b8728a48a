package parser

import (
	"testing"

	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return program
}

func TestParseDefineWithInit(t *testing.T) {
	program := parseProgram(t, `var int x = 1`)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	def, ok := program.Statements[0].(*ast.Define)
	if !ok {
		t.Fatalf("expected *ast.Define, got %T", program.Statements[0])
	}
	if def.Name.Name != "x" || def.Type.String() != "int" {
		t.Fatalf("unexpected define: %s", def.String())
	}
}

func TestParseFunctionDeclWithReturn(t *testing.T) {
	program := parseProgram(t, `
function add(a: int, b: int): int
  return a + b
end
`)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	fn, ok := program.Statements[0].(*ast.FunctionNode)
	if !ok {
		t.Fatalf("expected *ast.FunctionNode, got %T", program.Statements[0])
	}
	if fn.Name.Name != "add" || len(fn.Params) != 2 || fn.ReturnType.String() != "int" {
		t.Fatalf("unexpected function: %s", fn.String())
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", fn.Body.Statements[0])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected a + binary, got %#v", ret.Value)
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	program := parseProgram(t, `
if x < 1 then
  return 1
elseif x < 2 then
  return 2
else
  return 3
end
`)
	ifStmt, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", program.Statements[0])
	}
	if len(ifStmt.ElseIfs) != 1 || ifStmt.Else == nil {
		t.Fatalf("expected one elseif and an else, got %#v", ifStmt)
	}
}

func TestParseClassDecl(t *testing.T) {
	program := parseProgram(t, `
class Point implements Eq
  function init(x: int, y: int)
    self.x = x
  end
  function equals(other: any): bool
    return true
  end
end
`)
	class, ok := program.Statements[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", program.Statements[0])
	}
	if class.Name != "Point" || len(class.Interfaces) != 1 || class.Interfaces[0] != "Eq" {
		t.Fatalf("unexpected class: %s", class.String())
	}
	if len(class.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(class.Members))
	}
}

func TestParseInterfaceDecl(t *testing.T) {
	program := parseProgram(t, `
interface Eq
  function equals(other: any): bool
end
`)
	iface, ok := program.Statements[0].(*ast.InterfaceDecl)
	if !ok {
		t.Fatalf("expected *ast.InterfaceDecl, got %T", program.Statements[0])
	}
	if iface.Name != "Eq" || len(iface.Methods) != 1 {
		t.Fatalf("unexpected interface: %s", iface.String())
	}
}

func TestParseTypedefAndCall(t *testing.T) {
	program := parseProgram(t, `
typedef Score -> int
print(1, 2)
`)
	if _, ok := program.Statements[0].(*ast.Typedef); !ok {
		t.Fatalf("expected *ast.Typedef, got %T", program.Statements[0])
	}
	stmt, ok := program.Statements[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", program.Statements[1])
	}
	call, ok := stmt.Expr.(*ast.Call)
	if !ok || len(call.Args.Elems) != 2 {
		t.Fatalf("expected a 2-arg call, got %#v", stmt.Expr)
	}
}

func TestParseForNumericAndForIn(t *testing.T) {
	program := parseProgram(t, `
for i = 1, 10, 2 do
  print(i)
end
for k, v in pairs(t) do
  print(k, v)
end
`)
	forNum, ok := program.Statements[0].(*ast.ForNumeric)
	if !ok || forNum.Step == nil {
		t.Fatalf("expected a ForNumeric with step, got %#v", program.Statements[0])
	}
	forIn, ok := program.Statements[1].(*ast.ForIn)
	if !ok || len(forIn.Names.Names) != 2 {
		t.Fatalf("expected a 2-name ForIn, got %#v", program.Statements[1])
	}
}

func TestOperatorPrecedenceAndRightAssociativity(t *testing.T) {
	program := parseProgram(t, `local x = 2 + 3 * 4`)
	loc := program.Statements[0].(*ast.Local)
	bin := loc.Init.(*ast.Binary)
	if bin.Op != "+" {
		t.Fatalf("expected top-level +, got %s", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected 3 * 4 grouped on the right, got %#v", bin.Right)
	}

	program2 := parseProgram(t, `local y = 2 ^ 3 ^ 2`)
	loc2 := program2.Statements[0].(*ast.Local)
	bin2 := loc2.Init.(*ast.Binary)
	if bin2.Op != "^" {
		t.Fatalf("expected ^, got %s", bin2.Op)
	}
	if _, ok := bin2.Right.(*ast.Binary); !ok {
		t.Fatalf("expected ^ to be right-associative, got %#v", bin2.Right)
	}
	if _, ok := bin2.Left.(*ast.Primitive); !ok {
		t.Fatalf("expected left operand to be a primitive, got %#v", bin2.Left)
	}
}

func TestParseFieldAndIndexChaining(t *testing.T) {
	program := parseProgram(t, `local v = a.b[1].c`)
	loc := program.Statements[0].(*ast.Local)
	field, ok := loc.Init.(*ast.Field)
	if !ok || field.Name != "c" {
		t.Fatalf("expected outer field .c, got %#v", loc.Init)
	}
	sub, ok := field.Base.(*ast.Sub)
	if !ok {
		t.Fatalf("expected a Sub in the chain, got %#v", field.Base)
	}
	innerField, ok := sub.Base.(*ast.Field)
	if !ok || innerField.Name != "b" {
		t.Fatalf("expected inner field .b, got %#v", sub.Base)
	}
}

func TestParseTableConstructor(t *testing.T) {
	program := parseProgram(t, `local t = { 1, x = 2, 3 }`)
	loc := program.Statements[0].(*ast.Local)
	table, ok := loc.Init.(*ast.Table)
	if !ok || len(table.Values) != 3 {
		t.Fatalf("expected a 3-entry table, got %#v", loc.Init)
	}
	if table.Keys[1] != "x" {
		t.Fatalf("expected the second entry to be keyed 'x', got %q", table.Keys[1])
	}
}

func TestParseFuncTypeAnnotation(t *testing.T) {
	program := parseProgram(t, `var bool(any) pred`)
	def := program.Statements[0].(*ast.Define)
	ft, ok := def.Type.(*ast.FuncTypeExpr)
	if !ok {
		t.Fatalf("expected *ast.FuncTypeExpr, got %T", def.Type)
	}
	if ft.String() != "bool(any)" {
		t.Fatalf("unexpected func type string: %s", ft.String())
	}
}
