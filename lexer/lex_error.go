package lexer

import "fmt"

// LexError reports a byte the lexer could not classify into any ODL
// token class, or a non-ASCII byte found outside a text literal.
type LexError struct {
	Offset int
	Line   int
	Column int
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Reason)
}
