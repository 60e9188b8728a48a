// Package types implements the Type Registry: the closed type-node model
// (Any/Basic/Tuple/Func), the registered-type/alias/subtype universe, and
// the typed_match compatibility predicate that the semantic traversal uses
// to check assignments, arguments, returns, and method signatures.
package types

import "strings"

// Type is the closed set of type-node shapes: Any, Basic, Tuple, Func.
type Type interface {
	Kind() string
	String() string
}

// Any is the wildcard type that matches anything.
type Any struct{}

func (Any) Kind() string   { return "any" }
func (Any) String() string { return "any" }

// Basic names a registered primitive, class, interface, or alias.
type Basic struct {
	Name string
}

func (b Basic) Kind() string   { return "basic" }
func (b Basic) String() string { return b.Name }

// Tuple is an ordered sequence of component types.
type Tuple struct {
	Elems []Type
}

func (t Tuple) Kind() string { return "tuple" }
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Func is a function signature: a return type plus an ordered argument
// type list.
type Func struct {
	Return Type
	Args   []Type
}

func (f Func) Kind() string { return "func" }
func (f Func) String() string {
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

// Primitive type names pre-populated into every fresh TypeRegistry.
const (
	Num    = "num"
	Int    = "int"
	String = "string"
	Bool   = "bool"
	Nil    = "nil"
	Table  = "table"
)

var primitiveNames = []string{Num, Int, String, Bool, Nil, Table}
