package semantic

import (
	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/types"
)

// ValidatePass is pass 1 of the dual-pass traversal: it type-checks every
// expression and statement, populates the Type Registry and Scope Stack,
// and records a Diagnostic for every violation it finds (spec §4.4). It
// performs no emission.
type ValidatePass struct{}

// NewValidatePass creates the validation pass.
func NewValidatePass() *ValidatePass { return &ValidatePass{} }

func (p *ValidatePass) Name() string { return "validate" }

// Run walks program, validating every top-level statement in turn.
func (p *ValidatePass) Run(program *ast.Program, ctx *Context) error {
	v := &validator{ctx: ctx}
	for _, stmt := range program.Statements {
		v.validateTopLevelStatement(stmt)
	}
	return nil
}

// validateTopLevelStatement validates a statement appearing directly in the
// Program's statement list. A named *ast.FunctionNode here is a top-level
// function and gets registered in the Type Registry's function table; the
// same node reached through validateStatement (a class member, or a nested
// statement inside a block) is not (spec §4.4: "if named and at top level").
func (v *validator) validateTopLevelStatement(stmt ast.Statement) {
	if fn, ok := stmt.(*ast.FunctionNode); ok {
		v.validateFunction(fn, false)
		if fn.Name != nil {
			v.ctx.Registry.RegisterFunction(fn)
		}
		return
	}
	v.validateStatement(stmt)
}

type validator struct {
	ctx *Context
}

// GetType is the pure-ish function that assigns a Type to an expression
// (spec §4.4 get_type). It also performs the validation that is intrinsic
// to computing a type (arity checks on Call, member-resolution checks on
// Field/Sub), recording diagnostics as it goes; it returns nil when no
// type could be determined. TypedMatch never matches nil, so a caller that
// type-checks a nil result (Define, Set, Return, call arguments) also
// records a TypeMismatch for it.
func (v *validator) GetType(expr ast.Expression) types.Type {
	if expr == nil {
		return nil
	}
	switch n := expr.(type) {
	case *ast.Paren:
		return v.GetType(n.Inner)

	case *ast.Primitive:
		return types.Basic{Name: n.TypeName}

	case *ast.Identifier:
		if b, ok := v.ctx.Scopes.GetScopedVar(n.Name); ok {
			return b.Type
		}
		if fn, ok := v.ctx.Registry.FunctionExists(n.Name); ok {
			ft := types.FuncTypeOf(fn)
			return ft
		}
		v.ctx.AddDiagnostic(unknownType(n.Name, n.Pos()))
		return nil

	case *ast.Field:
		return v.getFieldType(n)

	case *ast.Sub:
		baseType := v.GetType(n.Base)
		if basic, ok := baseType.(types.Basic); ok && basic.Name == types.Table {
			return types.Any{}
		}
		v.ctx.AddDiagnostic(typeMismatch(types.Table, v.ctx.Registry.StringifyType(baseType), "index expression", n.Pos()))
		return nil

	case *ast.Call:
		return v.getCallType(n)

	case *ast.Unary:
		return v.getUnaryType(n)

	case *ast.Binary:
		return v.getBinaryType(n)

	case *ast.TupleExpr:
		elems := make([]types.Type, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = v.GetType(e)
		}
		return types.Tuple{Elems: elems}

	case *ast.LeftTuple:
		elems := make([]types.Type, len(n.Names))
		for i, id := range n.Names {
			elems[i] = v.GetType(id)
		}
		return types.Tuple{Elems: elems}

	case *ast.FunctionNode:
		return types.FuncTypeOf(n)

	case *ast.Table:
		return types.Basic{Name: types.Table}

	default:
		return nil
	}
}

func (v *validator) getFieldType(n *ast.Field) types.Type {
	baseType := v.GetType(n.Base)
	basic, ok := baseType.(types.Basic)
	if !ok {
		v.ctx.AddDiagnostic(unknownType(n.Name, n.Pos()))
		return nil
	}

	if class, ok := v.ctx.Registry.ClassExists(basic.Name); ok {
		for _, c := range classAncestry(v.ctx.Registry, class) {
			for _, m := range c.Members {
				switch member := m.(type) {
				case *ast.FunctionNode:
					if member.Name != nil && member.Name.Name == n.Name {
						return types.FuncTypeOf(member)
					}
				case *ast.Define:
					if member.Name.Name == n.Name {
						return types.ResolveTypeExpr(member.Type)
					}
				}
			}
		}
	}

	if iface, ok := v.ctx.Registry.InterfaceExists(basic.Name); ok {
		for _, anc := range interfaceAncestry(v.ctx.Registry, iface) {
			for _, m := range anc.Methods {
				if m.Name != nil && m.Name.Name == n.Name {
					return types.FuncTypeOf(m)
				}
			}
		}
	}

	v.ctx.AddDiagnostic(unknownType(n.Name, n.Pos()))
	return nil
}

func (v *validator) getCallType(n *ast.Call) types.Type {
	calleeType := v.GetType(n.Callee)
	fn, ok := calleeType.(types.Func)
	if !ok {
		// Callee did not resolve to a known function type; the failure was
		// already reported while computing calleeType, or the callee
		// genuinely is not callable (Any on the callee silently permits the
		// call, matching typed_match's Any-matches-everything rule).
		if _, isAny := calleeType.(types.Any); isAny {
			return types.Any{}
		}
		return nil
	}

	var args []ast.Expression
	if n.Args != nil {
		args = n.Args.Elems
	}

	name := calleeName(n.Callee)
	if len(args) != len(fn.Args) {
		v.ctx.AddDiagnostic(arityMismatch(name, len(fn.Args), len(args), n.Pos()))
		return fn.Return
	}
	for i, arg := range args {
		argType := v.GetType(arg)
		if !v.ctx.Registry.TypedMatch(fn.Args[i], argType) {
			v.ctx.AddDiagnostic(typeMismatch(
				v.ctx.Registry.StringifyType(fn.Args[i]),
				v.ctx.Registry.StringifyType(argType),
				"argument "+name, arg.Pos()))
		}
	}
	return fn.Return
}

func calleeName(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.Field:
		return n.Name
	default:
		return "<expr>"
	}
}

func (v *validator) getUnaryType(n *ast.Unary) types.Type {
	operand := v.GetType(n.Operand)
	switch n.Op {
	case "not":
		return types.Basic{Name: types.Bool}
	case "-":
		return operand
	case "#":
		return types.Basic{Name: types.Int}
	default:
		return operand
	}
}

func (v *validator) getBinaryType(n *ast.Binary) types.Type {
	left := v.GetType(n.Left)
	right := v.GetType(n.Right)
	switch n.Op {
	case "==", "~=", "<", "<=", ">", ">=":
		return types.Basic{Name: types.Bool}
	case "and", "or":
		if left != nil {
			return left
		}
		return right
	case "..":
		return types.Basic{Name: types.String}
	default: // + - * / % ^
		if basic, ok := left.(types.Basic); ok && (basic.Name == types.Int || basic.Name == types.Num) {
			return left
		}
		return right
	}
}

// ---- statement handlers ----

func (v *validator) validateStatement(stmt ast.Statement) {
	if stmt == nil {
		return
	}
	switch n := stmt.(type) {
	case *ast.Define:
		v.validateDefine(n)
	case *ast.Local:
		v.validateLocal(n)
	case *ast.Set:
		v.validateSet(n)
	case *ast.Typedef:
		v.validateTypedef(n)
	case *ast.InterfaceDecl:
		v.validateInterfaceDecl(n)
	case *ast.ClassDecl:
		v.validateClassDecl(n)
	case *ast.FunctionNode:
		v.validateFunction(n, false)
	case *ast.Call:
		v.GetType(n)
	case *ast.ExpressionStatement:
		v.GetType(n.Expr)
	case *ast.Return:
		v.validateReturn(n)
	case *ast.RepeatStmt:
		v.withScope(func() { v.validateBody(n.Body) })
		v.GetType(n.Cond)
	case *ast.WhileStmt:
		v.GetType(n.Cond)
		v.withScope(func() { v.validateBody(n.Body) })
	case *ast.IfStmt:
		v.validateIf(n)
	case *ast.ForNumeric:
		v.validateForNumeric(n)
	case *ast.ForIn:
		v.validateForIn(n)
	case *ast.DoBlock:
		v.withScope(func() { v.validateBody(n.Body) })
	case *ast.Label, *ast.Goto, *ast.Break:
		// emitted verbatim; no cross-reference validation (spec §4.4).
	default:
		// Unknown or expression-only statement kinds are ignored.
	}
}

func (v *validator) validateBody(body *ast.StatementList) {
	if body == nil {
		return
	}
	for _, s := range body.Statements {
		v.validateStatement(s)
	}
}

func (v *validator) withScope(f func()) {
	v.ctx.Scopes.PushScope()
	f()
	v.ctx.Scopes.PopScope()
}

func (v *validator) validateDefine(n *ast.Define) {
	declared := types.ResolveTypeExpr(n.Type)
	if !v.ctx.Registry.CompoundTypeExists(declared) {
		v.ctx.AddDiagnostic(unknownType(v.ctx.Registry.StringifyType(declared), n.Pos()))
	}
	if n.Init != nil {
		initType := v.GetType(n.Init)
		if !v.ctx.Registry.TypedMatch(declared, unwrapSingleton(initType)) {
			v.ctx.AddDiagnostic(typeMismatch(
				v.ctx.Registry.StringifyType(declared),
				v.ctx.Registry.StringifyType(initType),
				"initializer for "+n.Name.Name, n.Pos()))
		}
	}
	if !v.ctx.Scopes.AddScopedVar(&Binding{Name: n.Name.Name, Type: declared, Pos: n.Pos()}) {
		v.ctx.AddDiagnostic(shadowedDeclaration(n.Name.Name, n.Pos()))
	}
}

func (v *validator) validateLocal(n *ast.Local) {
	var t types.Type = types.Any{}
	if n.Init != nil {
		t = v.GetType(n.Init)
	}
	if !v.ctx.Scopes.AddScopedVar(&Binding{Name: n.Name.Name, Type: t, Pos: n.Pos()}) {
		v.ctx.AddDiagnostic(shadowedDeclaration(n.Name.Name, n.Pos()))
	}
}

// unwrapSingleton unwraps a Tuple of exactly one element for the purpose of
// matching against a non-tuple declared/expected type (spec §4.4 Set).
func unwrapSingleton(t types.Type) types.Type {
	if tup, ok := t.(types.Tuple); ok && len(tup.Elems) == 1 {
		return tup.Elems[0]
	}
	return t
}

func (v *validator) validateSet(n *ast.Set) {
	lhsType := v.GetType(n.LHS)
	rhsType := unwrapSingleton(v.GetType(n.RHS))
	if !v.ctx.Registry.TypedMatch(lhsType, rhsType) {
		v.ctx.AddDiagnostic(typeMismatch(
			v.ctx.Registry.StringifyType(lhsType),
			v.ctx.Registry.StringifyType(rhsType),
			"assignment", n.Pos()))
	}
}

func (v *validator) validateTypedef(n *ast.Typedef) {
	if v.ctx.Registry.TypeExists(n.Alias) {
		v.ctx.AddDiagnostic(duplicateType(n.Alias, n.Pos()))
		return
	}
	// Register the name before resolving its target so that a typedef can
	// be checked against its own name (direct or transitive self-reference
	// is exactly what AddTypeEquivalence's cycle guard below rejects).
	_ = v.ctx.Registry.RegisterType(n.Alias, n.Pos())

	target := types.ResolveTypeExpr(n.Target)
	if !v.ctx.Registry.CompoundTypeExists(target) {
		v.ctx.AddDiagnostic(unknownType(v.ctx.Registry.StringifyType(target), n.Pos()))
		return
	}
	if !v.ctx.Registry.AddTypeEquivalence(n.Alias, target) {
		v.ctx.AddDiagnostic(typeCycle(n.Alias, n.Pos()))
		return
	}
}

func (v *validator) validateInterfaceDecl(n *ast.InterfaceDecl) {
	if n.Parent != "" {
		if _, ok := v.ctx.Registry.InterfaceExists(n.Parent); !ok {
			v.ctx.AddDiagnostic(unknownParent("interface", n.Parent, n.Pos()))
		} else if !v.ctx.Registry.AddChildType(n.Name, n.Parent) {
			v.ctx.AddDiagnostic(typeCycle(n.Name, n.Pos()))
		}
	}
	if v.ctx.Registry.TypeExists(n.Name) {
		v.ctx.AddDiagnostic(duplicateType(n.Name, n.Pos()))
	} else {
		_ = v.ctx.Registry.RegisterType(n.Name, n.Pos())
	}
	v.ctx.Registry.RegisterInterface(n)

	for _, m := range n.Methods {
		v.validateFunction(m, true)
	}
}

func (v *validator) validateClassDecl(n *ast.ClassDecl) {
	if n.Parent != "" {
		if _, ok := v.ctx.Registry.ClassExists(n.Parent); !ok {
			v.ctx.AddDiagnostic(unknownParent("class", n.Parent, n.Pos()))
		} else if !v.ctx.Registry.AddChildType(n.Name, n.Parent) {
			v.ctx.AddDiagnostic(typeCycle(n.Name, n.Pos()))
		}
	}
	for _, ifaceName := range n.Interfaces {
		if _, ok := v.ctx.Registry.InterfaceExists(ifaceName); !ok {
			v.ctx.AddDiagnostic(unknownParent("interface", ifaceName, n.Pos()))
			continue
		}
		if !v.ctx.Registry.AddChildType(n.Name, ifaceName) {
			v.ctx.AddDiagnostic(typeCycle(n.Name, n.Pos()))
		}
	}
	if v.ctx.Registry.TypeExists(n.Name) {
		v.ctx.AddDiagnostic(duplicateType(n.Name, n.Pos()))
	} else {
		_ = v.ctx.Registry.RegisterType(n.Name, n.Pos())
	}
	v.ctx.Registry.RegisterClass(n)

	v.withScope(func() {
		for _, m := range n.Members {
			v.validateStatement(m)
		}
	})

	for _, missing := range MissingMethods(v.ctx.Registry, n) {
		name := "<unnamed>"
		if missing.Name != nil {
			name = missing.Name.Name
		}
		v.ctx.AddDiagnostic(missingInterfaceMethod(n.Name, name, n.Pos()))
	}
}

func (v *validator) validateFunction(n *ast.FunctionNode, isInterfaceMethod bool) {
	var retType types.Type
	if n.ReturnType != nil {
		retType = types.ResolveTypeExpr(n.ReturnType)
	}

	if n.Body == nil {
		if isInterfaceMethod {
			return
		}
		return
	}

	v.ctx.Scopes.PushScope()
	for _, p := range n.Params {
		pType := types.ResolveTypeExpr(p.Type)
		v.ctx.Scopes.AddScopedVar(&Binding{Name: p.Name.Name, Type: pType, Pos: p.Name.Pos()})
	}
	v.ctx.PushFunctionReturnType(retType)
	v.validateBody(n.Body)
	v.ctx.PopFunctionReturnType()
	v.ctx.Scopes.PopScope()
}

func (v *validator) validateReturn(n *ast.Return) {
	expected, has := v.ctx.CurrentFunctionReturnType()
	if !has {
		return
	}
	var actual types.Type
	if n.Value != nil {
		actual = v.GetType(n.Value)
	}
	if expected == nil {
		return // untyped/void function: nothing to check
	}
	if !v.ctx.Registry.TypedMatch(expected, actual) {
		v.ctx.AddDiagnostic(typeMismatch(
			v.ctx.Registry.StringifyType(expected),
			v.ctx.Registry.StringifyType(actual),
			"return", n.Pos()))
	}
}

func (v *validator) validateIf(n *ast.IfStmt) {
	v.GetType(n.Cond)
	v.withScope(func() { v.validateBody(n.Then) })
	for _, ei := range n.ElseIfs {
		v.GetType(ei.Cond)
		v.withScope(func() { v.validateBody(ei.Body) })
	}
	if n.Else != nil {
		v.withScope(func() { v.validateBody(n.Else) })
	}
}

func (v *validator) validateForNumeric(n *ast.ForNumeric) {
	v.GetType(n.Start)
	v.GetType(n.Limit)
	if n.Step != nil {
		v.GetType(n.Step)
	}
	v.withScope(func() {
		v.ctx.Scopes.AddScopedVar(&Binding{Name: n.Var.Name, Type: types.Basic{Name: types.Num}, Pos: n.Pos()})
		v.validateBody(n.Body)
	})
}

func (v *validator) validateForIn(n *ast.ForIn) {
	v.GetType(n.Source)
	v.withScope(func() {
		for _, name := range n.Names.Names {
			v.ctx.Scopes.AddScopedVar(&Binding{Name: name.Name, Type: types.Any{}, Pos: name.Pos()})
		}
		v.validateBody(n.Body)
	})
}
