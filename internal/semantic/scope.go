package semantic

import (
	"github.com/cwbudde/go-tlc/internal/lexer"
	"github.com/cwbudde/go-tlc/internal/types"
)

// Binding is what a scope frame maps a variable name to: the declared type
// and the position of the declaration that introduced it. This generalizes
// spec §4.2's "maps to the Define node that introduced it" to also cover
// untyped Local declarations and function parameters, which are not
// themselves Define nodes but are scoped the same way.
type Binding struct {
	Name string
	Type types.Type
	Pos  lexer.Position
}

// ScopeStack is a non-empty ordered sequence of frames; each frame maps a
// variable name to the Binding that introduced it (spec §3/§4.2).
type ScopeStack struct {
	frames []map[string]*Binding
}

// NewScopeStack creates a stack with a single root frame.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{frames: []map[string]*Binding{{}}}
}

// PushScope appends a fresh empty frame.
func (s *ScopeStack) PushScope() {
	s.frames = append(s.frames, map[string]*Binding{})
}

// PopScope removes the innermost frame. It panics if only the root frame
// remains, mirroring the invariant that the scope stack is never empty.
func (s *ScopeStack) PopScope() {
	if len(s.frames) <= 1 {
		panic("cannot pop the root scope")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// AddScopedVar inserts b into the innermost frame. Returns false (without
// inserting) if that frame already has a binding for b.Name: shadowing a
// binding from an outer frame is permitted, but redeclaring within the
// same frame is not.
func (s *ScopeStack) AddScopedVar(b *Binding) bool {
	frame := s.frames[len(s.frames)-1]
	key := b.Name
	if _, exists := frame[key]; exists {
		return false
	}
	frame[key] = b
	return true
}

// GetScopedVar searches innermost-first for name, returning its Binding
// or (nil, false) if unknown in any frame.
func (s *ScopeStack) GetScopedVar(name string) (*Binding, bool) {
	key := name
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i][key]; ok {
			return b, true
		}
	}
	return nil, false
}

// Depth returns the number of frames currently on the stack (1 means only
// the root frame is present).
func (s *ScopeStack) Depth() int {
	return len(s.frames)
}
