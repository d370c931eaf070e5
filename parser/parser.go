// Package parser implements a recursive-descent parser that turns ODL
// (Object Description Language) source text into a statement.Label
// (spec.md §4.3).
package parser

import (
	"fmt"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/pds-tools/odl/lexer"
	"github.com/pds-tools/odl/statement"
	"github.com/pds-tools/odl/token"
	"github.com/pds-tools/odl/value"
)

// Parser is a recursive-descent parser for ODL labels, built over a
// Lexer with one token of lookahead.
type Parser struct {
	lexer *lexer.Lexer
	cur   token.Item
}

// ParseError reports a parse-time failure with its source location.
// It wraps a *value.ValidationError (via Unwrap) when the failure
// originated in value or identifier construction rather than in the
// token grammar itself (spec.md §7).
type ParseError struct {
	Pos     token.Pos
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// New creates a Parser over input and primes its first token.
func New(input []byte) (*Parser, error) {
	p := &Parser{lexer: lexer.New(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a pooled Parser initialized over input and primes its
// first token. Call Put(p) when done to return it to the pool.
func Get(input []byte) (*Parser, error) {
	p := parserPool.Get().(*Parser)
	p.lexer = lexer.Get(input)
	p.cur = token.Item{}
	if err := p.advance(); err != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
		parserPool.Put(p)
		return nil, err
	}
	return p, nil
}

// Put returns p and its lexer to their pools. p must not be used afterward.
func Put(p *Parser) {
	if p.lexer != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
	}
	parserPool.Put(p)
}

// ParseLabel parses a complete label: a run of statements terminated
// by a bare `END` keyword. Trailing bytes after END are left
// unconsumed and ignored, since PDS labels commonly prefix a binary
// data payload (spec.md §6).
func (p *Parser) ParseLabel() (*statement.Label, error) {
	label := statement.NewLabel()
	for p.cur.Type != token.END {
		if p.cur.Type == token.EOF {
			return nil, p.errorf("unexpected end of input: missing END")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := label.Append(stmt); err != nil {
			return nil, p.wrapErr(err)
		}
	}
	return label, nil
}

func (p *Parser) parseStatement() (statement.Statement, error) {
	switch p.cur.Type {
	case token.BEGIN_GROUP:
		return p.parseGroup()
	case token.BEGIN_OBJECT:
		return p.parseObject()
	case token.IDENT, token.CIRCUMFLEX:
		return p.parseAttribute()
	default:
		return nil, p.errorf("unexpected token %v at start of statement", p.cur.Type)
	}
}

// parseAttribute follows spec.md §4.3's parse_statement rules for an
// identifier- or circumflex-led statement.
func (p *Parser) parseAttribute() (*statement.Attribute, error) {
	var ident string
	switch p.cur.Type {
	case token.CIRCUMFLEX:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type != token.IDENT {
			return nil, p.errorf("expected identifier after '^', got %v", p.cur.Type)
		}
		ident = "^" + p.cur.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
	case token.IDENT:
		first := p.cur.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == token.COLON {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Type != token.IDENT {
				return nil, p.errorf("expected identifier after ':', got %v", p.cur.Type)
			}
			ident = first + ":" + p.cur.Value
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			ident = first
		}
	default:
		return nil, p.errorf("unexpected token %v at start of statement", p.cur.Type)
	}

	if err := p.expect(token.EQUAL); err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	attr, err := statement.NewAttribute(ident, val, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return attr, nil
}

func (p *Parser) parseGroup() (*statement.Group, error) {
	if err := p.advance(); err != nil { // consume GROUP/BEGIN_GROUP
		return nil, err
	}
	if err := p.expect(token.EQUAL); err != nil {
		return nil, err
	}
	if p.cur.Type != token.IDENT {
		return nil, p.errorf("expected group identifier, got %v", p.cur.Type)
	}
	ident := p.cur.Value
	if err := p.advance(); err != nil {
		return nil, err
	}

	groupStmts := statement.NewGroupStatements()
	for p.cur.Type != token.END_GROUP {
		if p.cur.Type == token.EOF {
			return nil, p.errorf("unexpected end of input inside GROUP %s", ident)
		}
		if p.cur.Type != token.IDENT && p.cur.Type != token.CIRCUMFLEX {
			return nil, p.errorf("unexpected token %v inside GROUP %s", p.cur.Type, ident)
		}
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		if err := groupStmts.Append(attr); err != nil {
			return nil, p.wrapErr(err)
		}
	}
	if err := p.advance(); err != nil { // consume END_GROUP
		return nil, err
	}
	if err := p.matchClosingIdentifier(ident, "GROUP"); err != nil {
		return nil, err
	}

	g, err := statement.NewGroup(ident, groupStmts, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return g, nil
}

func (p *Parser) parseObject() (*statement.Object, error) {
	if err := p.advance(); err != nil { // consume OBJECT/BEGIN_OBJECT
		return nil, err
	}
	if err := p.expect(token.EQUAL); err != nil {
		return nil, err
	}
	if p.cur.Type != token.IDENT {
		return nil, p.errorf("expected object identifier, got %v", p.cur.Type)
	}
	ident := p.cur.Value
	if err := p.advance(); err != nil {
		return nil, err
	}

	objStmts := statement.NewObjectStatements()
	for p.cur.Type != token.END_OBJECT {
		if p.cur.Type == token.EOF {
			return nil, p.errorf("unexpected end of input inside OBJECT %s", ident)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := objStmts.Append(stmt); err != nil {
			return nil, p.wrapErr(err)
		}
	}
	if err := p.advance(); err != nil { // consume END_OBJECT
		return nil, err
	}
	if err := p.matchClosingIdentifier(ident, "OBJECT"); err != nil {
		return nil, err
	}

	o, err := statement.NewObject(ident, objStmts, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return o, nil
}

// matchClosingIdentifier implements the speculative `= IDENT` tail
// after END_GROUP/END_OBJECT: if the next token is EQUAL, it must be
// followed by an identifier matching opening's raw bytes exactly
// (spec.md §4.3); otherwise nothing is consumed.
func (p *Parser) matchClosingIdentifier(opening, kind string) error {
	if p.cur.Type != token.EQUAL {
		return nil
	}
	if err := p.advance(); err != nil {
		return err
	}
	if p.cur.Type != token.IDENT || p.cur.Value != opening {
		return p.errorf("closing identifier %q does not match %s identifier %q", p.cur.Value, kind, opening)
	}
	return p.advance()
}

// parseValue implements spec.md §4.3's parse_value, selecting on the
// current token's class.
func (p *Parser) parseValue() (value.Value, error) {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parseParenValue()
	case token.LBRACE:
		return p.parseSet()
	case token.IDENT:
		v, err := value.NewIdentifier(p.cur.Value, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, p.advance()
	case token.SYMBOL:
		v, err := value.NewSymbol(p.cur.Value, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, p.advance()
	case token.TEXT:
		// the lexer already accepted any byte but '"' in the body; the
		// believed-valid path skips re-validating it here.
		v, err := value.NewText(p.cur.Value, false)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, p.advance()
	case token.DATE:
		it := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := value.NewDate(it.Year, it.Month, !it.DayOfYear, it.Day, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, nil
	case token.TIME:
		it := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := value.NewTime(it.Hour, it.Minute, it.Second, it.HasSecond, it.UTC,
			it.ZoneHour, it.HasZone, it.ZoneMinute, it.HasZoneMinute, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, nil
	case token.DATE_TIME:
		it := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := value.NewDateTime(it.Year, it.Month, !it.DayOfYear, it.Day,
			it.Hour, it.Minute, it.Second, it.HasSecond, it.UTC,
			it.ZoneHour, it.HasZone, it.ZoneMinute, it.HasZoneMinute, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, nil
	case token.INTEGER:
		lit := p.cur.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		units, err := p.parseUnits()
		if err != nil {
			return nil, err
		}
		v, err := value.NewInteger(lit, units, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, nil
	case token.BASED_INTEGER:
		radix, digits := p.cur.Radix, p.cur.Digits
		if err := p.advance(); err != nil {
			return nil, err
		}
		units, err := p.parseUnits()
		if err != nil {
			return nil, err
		}
		v, err := value.NewBasedInteger(radix, digits, units, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, nil
	case token.REAL:
		lit := p.cur.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		units, err := p.parseUnits()
		if err != nil {
			return nil, err
		}
		v, err := value.NewReal(lit, units, true)
		if err != nil {
			return nil, p.wrapErr(err)
		}
		return v, nil
	default:
		return nil, p.errorf("unexpected token %v where a value was expected", p.cur.Type)
	}
}

// parseParenValue disambiguates seq1 from seq2 by peeking one token
// past the opening paren: another open paren means a Sequence2D.
func (p *Parser) parseParenValue() (value.Value, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Type == token.LPAREN {
		return p.parseSequence2D()
	}
	return p.parseSequence1D()
}

func (p *Parser) parseSequence1D() (*value.Sequence1D, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var elems []value.Scalar
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		sc, ok := v.(value.Scalar)
		if !ok {
			return nil, p.errorf("sequence element is not a scalar")
		}
		elems = append(elems, sc)
		if p.cur.Type != token.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Type != token.RPAREN {
		return nil, p.errorf("expected ')', got %v", p.cur.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	seq, err := value.NewSequence1D(elems, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return seq, nil
}

func (p *Parser) parseSequence2D() (*value.Sequence2D, error) {
	if err := p.advance(); err != nil { // consume outer '('
		return nil, err
	}
	var rows []*value.Sequence1D
	for {
		if p.cur.Type != token.LPAREN {
			return nil, p.errorf("expected '(', got %v", p.cur.Type)
		}
		row, err := p.parseSequence1D()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if p.cur.Type != token.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Type != token.RPAREN {
		return nil, p.errorf("expected ')', got %v", p.cur.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	seq, err := value.NewSequence2D(rows, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return seq, nil
}

func (p *Parser) parseSet() (*value.Set, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var elems []value.Value
	for p.cur.Type != token.RBRACE {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		if p.cur.Type != token.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Type != token.RBRACE {
		return nil, p.errorf("expected '}', got %v", p.cur.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	set, err := value.NewSet(elems, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return set, nil
}

// parseUnits implements spec.md §4.3's parse_units: a units
// expression, if present, is reconstructed by concatenating the raw
// payload of every token between the angle brackets with no
// separators, then validated as a whole.
func (p *Parser) parseUnits() (*value.Units, error) {
	if p.cur.Type != token.LANGLE {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var expr string
	for p.cur.Type != token.RANGLE {
		if p.cur.Type == token.EOF {
			return nil, p.errorf("unterminated units expression")
		}
		expr += p.cur.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume '>'
		return nil, err
	}
	u, err := value.NewUnits(expr, true)
	if err != nil {
		return nil, p.wrapErr(err)
	}
	return u, nil
}

func (p *Parser) advance() error {
	it, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.cur = it
	return nil
}

// peek returns the token after p.cur without consuming it, using the
// lexer's one-slot push-back.
func (p *Parser) peek() (token.Item, error) {
	it, err := p.lexer.Next()
	if err != nil {
		return token.Item{}, err
	}
	p.lexer.PushBack(it)
	return it, nil
}

func (p *Parser) expect(t token.Token) error {
	if p.cur.Type != t {
		return p.errorf("expected %v, got %v", t, p.cur.Type)
	}
	return p.advance()
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     p.cur.Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapErr lifts a *value.ValidationError (or any error from value/
// statement construction) into a *ParseError carrying the current
// token's location, preserving the original via Unwrap.
func (p *Parser) wrapErr(err error) *ParseError {
	return &ParseError{
		Pos:     p.cur.Pos,
		Message: err.Error(),
		Err:     pkgerrors.WithStack(err),
	}
}
