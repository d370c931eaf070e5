// Package lexer tokenizes ODL (Object Description Language) source text.
package lexer

import (
	"fmt"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/pds-tools/odl/token"
)

// Lexer tokenizes an ODL byte sequence. It exposes a one-slot push-back
// (spec.md §4.1) so the parser's single token of lookahead never needs
// more than one buffered Item.
type Lexer struct {
	input string
	start int // start offset of the token currently being scanned
	pos   int // current scan offset

	line    int // 1-based line of start
	linePos int // offset of the first byte of the current line

	pushed     bool
	pushedItem token.Item
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a Lexer over input.
func New(input []byte) *Lexer {
	l := &Lexer{}
	l.Reset(input)
	return l
}

// Get returns a pooled Lexer initialized over input. Call Put when done.
func Get(input []byte) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns l to the pool. l must not be used afterward.
func Put(l *Lexer) {
	lexerPool.Put(l)
}

// Reset reinitializes l to scan input from the start.
func (l *Lexer) Reset(input []byte) {
	l.input = string(input)
	l.start = 0
	l.pos = 0
	l.line = 1
	l.linePos = 0
	l.pushed = false
	l.pushedItem = token.Item{}
}

// PushBack returns it to the lexer so the next call to Next returns it
// again. Only one item may be pushed back at a time.
func (l *Lexer) PushBack(it token.Item) {
	l.pushed = true
	l.pushedItem = it
}

// Next returns the next token, skipping and discarding comments.
func (l *Lexer) Next() (token.Item, error) {
	if l.pushed {
		l.pushed = false
		return l.pushedItem, nil
	}
	return l.scan()
}

func (l *Lexer) scan() (token.Item, error) {
	for {
		if err := l.skipWhitespace(); err != nil {
			return token.Item{}, err
		}
		l.start = l.pos

		if l.pos >= len(l.input) {
			return l.item(token.EOF, ""), nil
		}

		ch := l.input[l.pos]

		if ch >= 0x80 {
			return token.Item{}, l.errorf("non-ASCII byte 0x%02x", ch)
		}

		if ch == '/' && l.peekByte(1) == '*' {
			if err := l.skipComment(); err != nil {
				return token.Item{}, err
			}
			continue
		}

		switch ch {
		case '=':
			l.pos++
			return l.item(token.EQUAL, "="), nil
		case ',':
			l.pos++
			return l.item(token.COMMA, ","), nil
		case '*':
			if l.peekByte(1) == '*' {
				l.pos += 2
				return l.item(token.DOUBLESTAR, "**"), nil
			}
			l.pos++
			return l.item(token.STAR, "*"), nil
		case '/':
			l.pos++
			return l.item(token.SLASH, "/"), nil
		case '^':
			l.pos++
			return l.item(token.CIRCUMFLEX, "^"), nil
		case '<':
			l.pos++
			return l.item(token.LANGLE, "<"), nil
		case '>':
			l.pos++
			return l.item(token.RANGLE, ">"), nil
		case '(':
			l.pos++
			return l.item(token.LPAREN, "("), nil
		case ')':
			l.pos++
			return l.item(token.RPAREN, ")"), nil
		case '{':
			l.pos++
			return l.item(token.LBRACE, "{"), nil
		case '}':
			l.pos++
			return l.item(token.RBRACE, "}"), nil
		case ':':
			l.pos++
			return l.item(token.COLON, ":"), nil
		case '"':
			return l.scanText()
		case '\'':
			return l.scanSymbol()
		}

		if isDigit(ch) {
			return l.scanNumberOrTemporal()
		}
		if ch == '+' || ch == '-' {
			return l.scanSignedNumber()
		}
		if ch == '.' && isDigit(l.peekByte(1)) {
			return l.scanSignedNumber()
		}
		if isIdentStart(ch) {
			return l.scanIdentifier()
		}

		l.pos++
		return token.Item{}, l.errorf("unrecognized character %q", ch)
	}
}

func (l *Lexer) item(typ token.Token, val string) token.Item {
	return token.Item{
		Type:  typ,
		Value: val,
		Pos: token.Pos{
			Offset: l.start,
			Line:   l.line,
			Column: l.start - l.linePos + 1,
		},
	}
}

func (l *Lexer) errorf(format string, args ...any) error {
	err := &LexError{
		Offset: l.start,
		Line:   l.line,
		Column: l.start - l.linePos + 1,
		Reason: fmt.Sprintf(format, args...),
	}
	return pkgerrors.WithStack(err)
}

// skipWhitespace advances past horizontal/vertical whitespace (tab,
// space, CR, LF, VT, FF) and tracks line/column bookkeeping.
func (l *Lexer) skipWhitespace() error {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch ch {
		case ' ', '\t', '\r', '\v', '\f':
			l.pos++
		case '\n':
			l.pos++
			l.line++
			l.linePos = l.pos
		default:
			if ch >= 0x80 {
				return nil // let scan() report the non-ASCII byte with its own offset
			}
			return nil
		}
	}
	return nil
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '_'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
