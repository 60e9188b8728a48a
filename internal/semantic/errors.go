package semantic

import (
	"fmt"

	"github.com/cwbudde/go-tlc/internal/lexer"
)

// ErrorKind is the closed taxonomy of semantic diagnostics (spec §7).
type ErrorKind string

const (
	UnknownType            ErrorKind = "UnknownType"
	DuplicateType          ErrorKind = "DuplicateType"
	TypeMismatch            ErrorKind = "TypeMismatch"
	ShadowedDeclaration     ErrorKind = "ShadowedDeclaration"
	UnknownParent           ErrorKind = "UnknownParent"
	TypeCycle               ErrorKind = "TypeCycle"
	ArityMismatch           ErrorKind = "ArityMismatch"
	MissingInterfaceMethod  ErrorKind = "MissingInterfaceMethod"
)

// Diagnostic is a single recorded semantic error, collected rather than
// thrown (spec §7 propagation policy).
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Pos     lexer.Position
}

// Error renders the diagnostic the way the driver prints it: prefixed
// with ERROR and including the source line when known.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("ERROR %s at %s: %s", d.Kind, d.Pos, d.Message)
}

func newDiag(kind ErrorKind, pos lexer.Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func unknownType(name string, pos lexer.Position) *Diagnostic {
	return newDiag(UnknownType, pos, "unknown type %q", name)
}

func duplicateType(name string, pos lexer.Position) *Diagnostic {
	return newDiag(DuplicateType, pos, "%q is already declared", name)
}

func typeMismatch(expected, actual string, site string, pos lexer.Position) *Diagnostic {
	return newDiag(TypeMismatch, pos, "%s: expected %s, got %s", site, expected, actual)
}

func shadowedDeclaration(name string, pos lexer.Position) *Diagnostic {
	return newDiag(ShadowedDeclaration, pos, "%q is already declared in this scope", name)
}

func unknownParent(kind, name string, pos lexer.Position) *Diagnostic {
	return newDiag(UnknownParent, pos, "%s %q does not exist", kind, name)
}

func typeCycle(name string, pos lexer.Position) *Diagnostic {
	return newDiag(TypeCycle, pos, "%q would introduce a type cycle", name)
}

func arityMismatch(name string, expected, actual int, pos lexer.Position) *Diagnostic {
	return newDiag(ArityMismatch, pos, "%q expects %d argument(s), got %d", name, expected, actual)
}

func missingInterfaceMethod(class, method string, pos lexer.Position) *Diagnostic {
	return newDiag(MissingInterfaceMethod, pos, "class %q does not implement method %q", class, method)
}
