package parser

import (
	"fmt"

	"github.com/cwbudde/go-tlc/internal/lexer"
)

// ParserError is a single structured parse error with position information.
type ParserError struct {
	Message string
	Pos     lexer.Position
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}
