package types

import (
	"testing"

	"github.com/cwbudde/go-tlc/internal/lexer"
)

func TestPrimitivesPreregistered(t *testing.T) {
	r := NewTypeRegistry()
	for _, name := range []string{Num, Int, String, Bool, Nil, Table} {
		if !r.TypeExists(name) {
			t.Errorf("expected primitive %q to be pre-registered", name)
		}
	}
}

func TestRegisterTypeDuplicate(t *testing.T) {
	r := NewTypeRegistry()
	if err := r.RegisterType("Foo", lexerPos(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.RegisterType("Foo", lexerPos(2)); err == nil {
		t.Fatal("expected DuplicateType error on exact redeclaration")
	}
	// Lua identifiers are case-sensitive: "foo" and "Foo" are distinct names.
	if err := r.RegisterType("foo", lexerPos(3)); err != nil {
		t.Fatalf("expected 'foo' to be a distinct type from 'Foo', got error: %v", err)
	}
}

func TestCompoundTypeExists(t *testing.T) {
	r := NewTypeRegistry()
	_ = r.RegisterType("MyClass", lexerPos(1))

	cases := []struct {
		name string
		typ  Type
		want bool
	}{
		{"any", Any{}, true},
		{"known basic", Basic{Name: "int"}, true},
		{"unknown basic", Basic{Name: "Bogus"}, false},
		{"tuple all known", Tuple{Elems: []Type{Basic{Name: "int"}, Basic{Name: "MyClass"}}}, true},
		{"tuple one unknown", Tuple{Elems: []Type{Basic{Name: "int"}, Basic{Name: "Bogus"}}}, false},
		{"func ok", Func{Return: Basic{Name: "bool"}, Args: []Type{Any{}}}, true},
	}
	for _, c := range cases {
		if got := r.CompoundTypeExists(c.typ); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAddTypeEquivalenceDirectCycle(t *testing.T) {
	r := NewTypeRegistry()
	if ok := r.AddTypeEquivalence("A", Basic{Name: "A"}); ok {
		t.Fatal("expected direct self-reference to be rejected")
	}
}

func TestAddTypeEquivalenceTransitiveCycle(t *testing.T) {
	r := NewTypeRegistry()
	if ok := r.AddTypeEquivalence("A", Basic{Name: "B"}); !ok {
		t.Fatal("A -> B should be accepted")
	}
	if ok := r.AddTypeEquivalence("B", Basic{Name: "A"}); ok {
		t.Fatal("B -> A should be rejected: A already (transitively) refers to B")
	}
}

func TestAddTypeEquivalenceAcceptsNonCyclicAlias(t *testing.T) {
	r := NewTypeRegistry()
	if ok := r.AddTypeEquivalence("ID", Basic{Name: "int"}); !ok {
		t.Fatal("ID -> int should be accepted")
	}
	if _, ok := r.ResolveAlias("ID"); !ok {
		t.Fatal("expected exact-case alias lookup to succeed")
	}
	if _, ok := r.ResolveAlias("id"); ok {
		t.Fatal("expected 'id' not to resolve the 'ID' alias: identifiers are case-sensitive")
	}
}

func TestAddChildTypeCycle(t *testing.T) {
	r := NewTypeRegistry()
	if !r.AddChildType("Dog", "Animal") {
		t.Fatal("Dog -> Animal should be accepted")
	}
	if r.AddChildType("Animal", "Dog") {
		t.Fatal("Animal -> Dog should be rejected: would create a cycle")
	}
}

func TestIsSubtypeReflexiveTransitive(t *testing.T) {
	r := NewTypeRegistry()
	r.AddChildType("Dog", "Animal")
	r.AddChildType("Puppy", "Dog")

	if !r.IsSubtype("Puppy", "Puppy") {
		t.Error("expected reflexive IsSubtype(Puppy, Puppy)")
	}
	if !r.IsSubtype("Puppy", "Animal") {
		t.Error("expected transitive IsSubtype(Puppy, Animal)")
	}
	if r.IsSubtype("Animal", "Puppy") {
		t.Error("IsSubtype should not hold in reverse")
	}
}

func TestTypedMatchAnyAlwaysMatches(t *testing.T) {
	r := NewTypeRegistry()
	if !r.TypedMatch(Any{}, Basic{Name: "int"}) {
		t.Error("expected Any to match anything as expected side")
	}
	if !r.TypedMatch(Basic{Name: "int"}, Any{}) {
		t.Error("expected Any to match anything as actual side")
	}
}

func TestTypedMatchBasicSubtype(t *testing.T) {
	r := NewTypeRegistry()
	r.AddChildType("Dog", "Animal")
	if !r.TypedMatch(Basic{Name: "Animal"}, Basic{Name: "Dog"}) {
		t.Error("expected Dog to be assignable to Animal")
	}
	if r.TypedMatch(Basic{Name: "Dog"}, Basic{Name: "Animal"}) {
		t.Error("Animal should not be assignable to Dog")
	}
}

func TestTypedMatchFuncAndTuple(t *testing.T) {
	r := NewTypeRegistry()
	f1 := Func{Return: Basic{Name: "bool"}, Args: []Type{Any{}}}
	f2 := Func{Return: Basic{Name: "bool"}, Args: []Type{Any{}}}
	if !r.TypedMatch(f1, f2) {
		t.Error("expected identical func signatures to match")
	}
	tup1 := Tuple{Elems: []Type{Basic{Name: "int"}, Basic{Name: "string"}}}
	tup2 := Tuple{Elems: []Type{Basic{Name: "int"}, Basic{Name: "string"}}}
	if !r.TypedMatch(tup1, tup2) {
		t.Error("expected identical tuples to match")
	}
	tup3 := Tuple{Elems: []Type{Basic{Name: "int"}}}
	if r.TypedMatch(tup1, tup3) {
		t.Error("expected tuples of different length to not match")
	}
}

func TestTypedMatchSelfReflexive(t *testing.T) {
	r := NewTypeRegistry()
	types := []Type{
		Any{},
		Basic{Name: "int"},
		Tuple{Elems: []Type{Basic{Name: "int"}, Basic{Name: "string"}}},
		Func{Return: Basic{Name: "bool"}, Args: []Type{Any{}}},
	}
	for _, ty := range types {
		if !r.TypedMatch(ty, ty) {
			t.Errorf("expected TypedMatch(%v, %v) to hold (reflexivity)", ty, ty)
		}
	}
}

func lexerPos(line int) lexer.Position {
	return lexer.Position{Line: line}
}
