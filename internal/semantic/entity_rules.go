package semantic

import (
	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/types"
)

// classAncestry returns class and every ancestor reachable by following
// Parent names through the registry, in order (class first). A missing or
// cyclic parent simply stops the walk; UnknownParent is reported
// separately at the point the parent edge is declared.
func classAncestry(reg *types.TypeRegistry, class *ast.ClassDecl) []*ast.ClassDecl {
	var chain []*ast.ClassDecl
	seen := map[string]bool{}
	cur := class
	for cur != nil {
		if seen[cur.Name] {
			break
		}
		seen[cur.Name] = true
		chain = append(chain, cur)
		if cur.Parent == "" {
			break
		}
		parent, ok := reg.ClassExists(cur.Parent)
		if !ok {
			break
		}
		cur = parent
	}
	return chain
}

// interfaceAncestry returns iface and every ancestor reachable by
// following Parent names through the registry, in order (iface first).
func interfaceAncestry(reg *types.TypeRegistry, iface *ast.InterfaceDecl) []*ast.InterfaceDecl {
	var chain []*ast.InterfaceDecl
	seen := map[string]bool{}
	cur := iface
	for cur != nil {
		if seen[cur.Name] {
			break
		}
		seen[cur.Name] = true
		chain = append(chain, cur)
		if cur.Parent == "" {
			break
		}
		parent, ok := reg.InterfaceExists(cur.Parent)
		if !ok {
			break
		}
		cur = parent
	}
	return chain
}

// requiredMethods collects every method declared by any interface
// transitively required by class or any class in its ancestry (spec
// §4.3 step 1).
func requiredMethods(reg *types.TypeRegistry, class *ast.ClassDecl) []*ast.FunctionNode {
	var required []*ast.FunctionNode
	for _, c := range classAncestry(reg, class) {
		for _, ifaceName := range c.Interfaces {
			iface, ok := reg.InterfaceExists(ifaceName)
			if !ok {
				continue
			}
			for _, anc := range interfaceAncestry(reg, iface) {
				required = append(required, anc.Methods...)
			}
		}
	}
	return required
}

// providedMethods collects every method declaration in class or any class
// in its ancestry (spec §4.3 step 2).
func providedMethods(reg *types.TypeRegistry, class *ast.ClassDecl) []*ast.FunctionNode {
	var provided []*ast.FunctionNode
	for _, c := range classAncestry(reg, class) {
		for _, m := range c.Members {
			if fn, ok := m.(*ast.FunctionNode); ok {
				provided = append(provided, fn)
			}
		}
	}
	return provided
}

// MethodsEquivalent is true iff m1 and m2 have byte-equal names and their
// function-type signatures (return type + argument types) satisfy
// TypedMatch in both directions (spec §4.3).
func MethodsEquivalent(reg *types.TypeRegistry, m1, m2 *ast.FunctionNode) bool {
	if m1.Name == nil || m2.Name == nil || m1.Name.Name != m2.Name.Name {
		return false
	}
	t1 := types.FuncTypeOf(m1)
	t2 := types.FuncTypeOf(m2)
	return reg.TypedMatch(t1, t2) && reg.TypedMatch(t2, t1)
}

// MissingMethods returns the set of interface-imposed methods that are not
// yet satisfied by any class in class's ancestry chain (spec §4.3).
func MissingMethods(reg *types.TypeRegistry, class *ast.ClassDecl) []*ast.FunctionNode {
	required := requiredMethods(reg, class)
	provided := providedMethods(reg, class)

	var missing []*ast.FunctionNode
	for _, m := range required {
		satisfied := false
		for _, p := range provided {
			if MethodsEquivalent(reg, m, p) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, m)
		}
	}
	return missing
}
