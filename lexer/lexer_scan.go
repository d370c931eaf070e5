package lexer

import "github.com/pds-tools/odl/token"

// skipComment consumes a "/* ... */" comment body (which may not itself
// contain a line terminator, per the ODL grammar) and then everything up
// through the next line terminator, discarding all of it (spec.md §4.1).
func (l *Lexer) skipComment() error {
	l.pos += 2 // "/*"
	for {
		if l.pos >= len(l.input) {
			return l.errorf("unterminated comment")
		}
		ch := l.input[l.pos]
		if ch >= 0x80 {
			return l.errorf("non-ASCII byte 0x%02x", ch)
		}
		if isLineTerminator(ch) {
			return l.errorf("unterminated comment")
		}
		if ch == '*' && l.peekByte(1) == '/' {
			l.pos += 2
			break
		}
		l.pos++
	}
	for l.pos < len(l.input) && !isLineTerminator(l.input[l.pos]) {
		l.pos++
	}
	for l.pos < len(l.input) && isLineTerminator(l.input[l.pos]) {
		if l.input[l.pos] == '\n' {
			l.pos++
			l.line++
			l.linePos = l.pos
		} else {
			l.pos++
		}
	}
	return nil
}

func isLineTerminator(ch byte) bool {
	return ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

// scanText scans a "..." text literal. Any byte except '"' is permitted
// in the body (spec.md §4.1 item 8); embedded ASCII control bytes are
// passed through verbatim, matching the grammar's unescaped design.
func (l *Lexer) scanText() (token.Item, error) {
	l.pos++ // opening quote
	bodyStart := l.pos
	for {
		if l.pos >= len(l.input) {
			return token.Item{}, l.errorf("unterminated text literal")
		}
		ch := l.input[l.pos]
		if ch == '"' {
			val := l.input[bodyStart:l.pos]
			l.pos++
			return l.item(token.TEXT, val), nil
		}
		if ch == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		l.pos++
	}
}

// scanSymbol scans a '...' symbol literal: printable, non-control ASCII
// only, at least one byte (spec.md §4.1 item 9).
func (l *Lexer) scanSymbol() (token.Item, error) {
	l.pos++ // opening quote
	bodyStart := l.pos
	for {
		if l.pos >= len(l.input) {
			return token.Item{}, l.errorf("unterminated symbol literal")
		}
		ch := l.input[l.pos]
		if ch >= 0x80 {
			return token.Item{}, l.errorf("non-ASCII byte 0x%02x", ch)
		}
		if ch == '\'' {
			if l.pos == bodyStart {
				return token.Item{}, l.errorf("empty symbol literal")
			}
			val := l.input[bodyStart:l.pos]
			l.pos++
			return l.item(token.SYMBOL, val), nil
		}
		if ch < 0x20 || ch == 0x7f {
			return token.Item{}, l.errorf("control byte 0x%02x in symbol literal", ch)
		}
		l.pos++
	}
}

// scanIdentifier scans letter (_? alnum)*, then promotes to a reserved
// token class if the raw spelling (case-insensitively) names one.
func (l *Lexer) scanIdentifier() (token.Item, error) {
	l.pos++ // first letter, already verified by caller
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '_' {
			// a single underscore may separate identifier characters, but
			// never doubles and never trails.
			if l.pos+1 >= len(l.input) || !isIdentChar(l.input[l.pos+1]) || l.input[l.pos+1] == '_' {
				break
			}
			l.pos++
			continue
		}
		if !isIdentChar(ch) {
			break
		}
		l.pos++
	}
	raw := l.input[l.start:l.pos]
	return l.item(token.LookupIdent(raw), raw), nil
}
