package types

import (
	"fmt"

	"github.com/cwbudde/go-tlc/internal/ast"
	"github.com/cwbudde/go-tlc/internal/lexer"
)

// Descriptor records where and how a type name was registered, so
// diagnostics can point back at the original declaration site.
type Descriptor struct {
	Name string
	Pos  lexer.Position
}

// TypeRegistry is the per-traversal universe of registered types, aliases,
// subtype edges, and the declared classes/interfaces/functions. It answers
// existence, equivalence, and type-compatibility queries for the semantic
// traversal (spec §4.1).
type TypeRegistry struct {
	types   map[string]*Descriptor // name -> descriptor
	aliases map[string]Type        // alias name -> target
	// subtypes[child][parent] records a direct child->parent edge added by
	// extends/implements.
	subtypes map[string]map[string]bool

	classes    map[string]*ast.ClassDecl
	interfaces map[string]*ast.InterfaceDecl
	functions  map[string]*ast.FunctionNode
}

// NewTypeRegistry creates a registry pre-populated with the primitive
// types num, int, string, bool, nil, table.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{
		types:      make(map[string]*Descriptor),
		aliases:    make(map[string]Type),
		subtypes:   make(map[string]map[string]bool),
		classes:    make(map[string]*ast.ClassDecl),
		interfaces: make(map[string]*ast.InterfaceDecl),
		functions:  make(map[string]*ast.FunctionNode),
	}
	for _, name := range primitiveNames {
		r.types[name] = &Descriptor{Name: name}
	}
	return r
}

// RegisterType adds name to the set of known types. Returns an error if
// the name is already registered (DuplicateType).
func (r *TypeRegistry) RegisterType(name string, pos lexer.Position) error {
	if existing, ok := r.types[name]; ok {
		return fmt.Errorf("DuplicateType(%s) already declared at %s", name, existing.Pos)
	}
	r.types[name] = &Descriptor{Name: name, Pos: pos}
	return nil
}

// TypeExists reports whether name is a known type (primitive, class,
// interface, or alias).
func (r *TypeRegistry) TypeExists(name string) bool {
	_, ok := r.types[name]
	return ok
}

// ResolveAlias follows a single alias hop, returning the type it stands
// for and true if name is a registered alias.
func (r *TypeRegistry) ResolveAlias(name string) (Type, bool) {
	t, ok := r.aliases[name]
	return t, ok
}

// CompoundTypeExists reports whether every Basic name appearing anywhere
// in t is a known type (directly or through an alias), recursing into
// Tuple and Func subcomponents. Any is always accepted.
func (r *TypeRegistry) CompoundTypeExists(t Type) bool {
	switch v := t.(type) {
	case nil:
		return false
	case Any:
		return true
	case Basic:
		if r.TypeExists(v.Name) {
			return true
		}
		_, ok := r.ResolveAlias(v.Name)
		return ok
	case Tuple:
		for _, e := range v.Elems {
			if !r.CompoundTypeExists(e) {
				return false
			}
		}
		return true
	case Func:
		if v.Return != nil && !r.CompoundTypeExists(v.Return) {
			return false
		}
		for _, a := range v.Args {
			if !r.CompoundTypeExists(a) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AddTypeEquivalence records alias -> target. It refuses (and returns
// false without installing the edge) if target refers to alias, directly
// or indirectly through other aliases: a typedef may not refer to itself,
// even transitively.
func (r *TypeRegistry) AddTypeEquivalence(alias string, target Type) bool {
	if r.referencesName(target, alias, map[string]bool{}) {
		return false
	}
	r.aliases[alias] = target
	return true
}

func (r *TypeRegistry) referencesName(t Type, name string, visited map[string]bool) bool {
	switch v := t.(type) {
	case Basic:
		if v.Name == name {
			return true
		}
		if visited[v.Name] {
			return false
		}
		visited[v.Name] = true
		if target, ok := r.aliases[v.Name]; ok {
			return r.referencesName(target, name, visited)
		}
		return false
	case Tuple:
		for _, e := range v.Elems {
			if r.referencesName(e, name, visited) {
				return true
			}
		}
		return false
	case Func:
		if v.Return != nil && r.referencesName(v.Return, name, visited) {
			return true
		}
		for _, a := range v.Args {
			if r.referencesName(a, name, visited) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AddChildType inserts a child -> parent subtype edge. Returns false (and
// does not install the edge) if doing so would create a cycle, i.e. parent
// is already a (reflexive-transitive) descendant of child.
func (r *TypeRegistry) AddChildType(child, parent string) bool {
	if child == parent || r.IsSubtype(parent, child) {
		return false
	}
	if r.subtypes[child] == nil {
		r.subtypes[child] = make(map[string]bool)
	}
	r.subtypes[child][parent] = true
	return true
}

// IsSubtype reports whether child equals parent, or parent is reachable
// from child by following subtype edges (the reflexive-transitive
// closure).
func (r *TypeRegistry) IsSubtype(child, parent string) bool {
	if child == parent {
		return true
	}
	visited := map[string]bool{}
	var walk func(name string) bool
	walk = func(name string) bool {
		if visited[name] {
			return false
		}
		visited[name] = true
		for p := range r.subtypes[name] {
			if p == parent {
				return true
			}
			if walk(p) {
				return true
			}
		}
		return false
	}
	return walk(child)
}

// canonicalBasic resolves a Basic type through the alias chain until it
// reaches a non-alias name (a primitive, class, or interface).
func (r *TypeRegistry) canonicalBasic(b Basic) Type {
	seen := map[string]bool{}
	cur := Type(b)
	for {
		bt, ok := cur.(Basic)
		if !ok {
			return cur
		}
		if seen[bt.Name] {
			return cur
		}
		seen[bt.Name] = true
		target, ok := r.aliases[bt.Name]
		if !ok {
			return cur
		}
		cur = target
	}
}

// TypedMatch is the central compatibility predicate used for assignment,
// argument, and method-equivalence checks (spec §4.1).
func (r *TypeRegistry) TypedMatch(expected, actual Type) bool {
	if expected == nil || actual == nil {
		return false
	}
	if _, ok := expected.(Any); ok {
		return true
	}
	if _, ok := actual.(Any); ok {
		return true
	}

	eb, eIsBasic := expected.(Basic)
	ab, aIsBasic := actual.(Basic)
	if eIsBasic && aIsBasic {
		ce := r.canonicalBasic(eb)
		ca := r.canonicalBasic(ab)
		ceBasic, ceOK := ce.(Basic)
		caBasic, caOK := ca.(Basic)
		if ceOK && caOK {
			if ceBasic.Name == caBasic.Name {
				return true
			}
			return r.IsSubtype(caBasic.Name, ceBasic.Name)
		}
		return r.TypedMatch(ce, ca)
	}

	et, eIsTuple := expected.(Tuple)
	at, aIsTuple := actual.(Tuple)
	if eIsTuple && aIsTuple {
		if len(et.Elems) != len(at.Elems) {
			return false
		}
		for i := range et.Elems {
			if !r.TypedMatch(et.Elems[i], at.Elems[i]) {
				return false
			}
		}
		return true
	}

	ef, eIsFunc := expected.(Func)
	af, aIsFunc := actual.(Func)
	if eIsFunc && aIsFunc {
		if !r.returnTypesMatch(ef.Return, af.Return) {
			return false
		}
		if len(ef.Args) != len(af.Args) {
			return false
		}
		for i := range ef.Args {
			if !r.TypedMatch(ef.Args[i], af.Args[i]) {
				return false
			}
		}
		return true
	}

	return false
}

// returnTypesMatch compares two function return types where a nil Return
// means "no declared return type" (a void procedure), per FuncTypeOf.
// A nil Return is a void sentinel, not a type-check failure: void matches
// void, and otherwise falls through to an ordinary TypedMatch comparison.
func (r *TypeRegistry) returnTypesMatch(expected, actual Type) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	return r.TypedMatch(expected, actual)
}

// RegisterInterface stores decl under its own name.
func (r *TypeRegistry) RegisterInterface(decl *ast.InterfaceDecl) {
	r.interfaces[decl.Name] = decl
}

// RegisterClass stores decl under its own name.
func (r *TypeRegistry) RegisterClass(decl *ast.ClassDecl) {
	r.classes[decl.Name] = decl
}

// RegisterFunction stores decl under its own name.
func (r *TypeRegistry) RegisterFunction(decl *ast.FunctionNode) {
	if decl.Name == nil {
		return
	}
	r.functions[decl.Name.Name] = decl
}

// InterfaceExists looks up a registered interface declaration.
func (r *TypeRegistry) InterfaceExists(name string) (*ast.InterfaceDecl, bool) {
	d, ok := r.interfaces[name]
	return d, ok
}

// ClassExists looks up a registered class declaration.
func (r *TypeRegistry) ClassExists(name string) (*ast.ClassDecl, bool) {
	d, ok := r.classes[name]
	return d, ok
}

// FunctionExists looks up a registered top-level function declaration.
func (r *TypeRegistry) FunctionExists(name string) (*ast.FunctionNode, bool) {
	d, ok := r.functions[name]
	return d, ok
}

// StringifyType renders t in the human-readable form used in diagnostics.
func (r *TypeRegistry) StringifyType(t Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}

// Descriptor returns the registration descriptor for name, if any.
func (r *TypeRegistry) Descriptor(name string) (*Descriptor, bool) {
	d, ok := r.types[name]
	return d, ok
}

// Count returns the number of registered type names.
func (r *TypeRegistry) Count() int {
	return len(r.types)
}
