package types

import "github.com/cwbudde/go-tlc/internal/ast"

// ResolveTypeExpr converts a parsed ast.TypeNode into a runtime Type value.
// It does not check that Basic names actually exist; callers that need
// that should also call CompoundTypeExists.
func ResolveTypeExpr(t ast.TypeNode) Type {
	switch v := t.(type) {
	case nil:
		return nil
	case *ast.AnyTypeExpr:
		return Any{}
	case *ast.BasicTypeExpr:
		return Basic{Name: v.Name}
	case *ast.TupleTypeExpr:
		elems := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = ResolveTypeExpr(e)
		}
		return Tuple{Elems: elems}
	case *ast.FuncTypeExpr:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = ResolveTypeExpr(a)
		}
		return Func{Return: ResolveTypeExpr(v.Return), Args: args}
	default:
		return nil
	}
}

// FuncTypeOf builds the Func signature type for a FunctionNode, resolving
// its parameter and return type annotations.
func FuncTypeOf(fn *ast.FunctionNode) Func {
	args := make([]Type, len(fn.Params))
	for i, p := range fn.Params {
		args[i] = ResolveTypeExpr(p.Type)
	}
	var ret Type
	if fn.ReturnType != nil {
		ret = ResolveTypeExpr(fn.ReturnType)
	}
	return Func{Return: ret, Args: args}
}
