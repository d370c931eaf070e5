// Package odl parses, builds, and serializes PDS (Planetary Data
// System) labels written in ODL (Object Description Language). It is
// a thin façade over token, lexer, value, statement, parser and
// format — see those packages for the token stream, typed value
// model, statement containers, recursive-descent parser and canonical
// serializer respectively.
package odl

import (
	"github.com/pds-tools/odl/format"
	"github.com/pds-tools/odl/parser"
	"github.com/pds-tools/odl/statement"
)

// Re-exported so callers need import only this package for the
// common case.
type (
	Label            = statement.Label
	GroupStatements  = statement.GroupStatements
	ObjectStatements = statement.ObjectStatements
	Statement        = statement.Statement
	Attribute        = statement.Attribute
	Group            = statement.Group
	Object           = statement.Object

	ParseError = parser.ParseError
)

// Parse reads a PDS label from input, stopping at the first `END`
// keyword; any trailing bytes (a binary data payload, commonly) are
// left unconsumed. A pooled Parser is used internally.
func Parse(input []byte) (*Label, error) {
	p, err := parser.Get(input)
	if err != nil {
		return nil, err
	}
	defer parser.Put(p)
	return p.ParseLabel()
}

// Format validates label and renders its canonical ASCII
// serialization.
func Format(label *Label) ([]byte, error) {
	f, err := format.Format(label)
	if err != nil {
		return nil, err
	}
	return f.Bytes(), nil
}

// FormatString is Format, returning a string instead of a byte slice.
func FormatString(label *Label) (string, error) {
	f, err := format.Format(label)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// NewLabel constructs an empty Label for programmatic construction.
func NewLabel() *Label { return statement.NewLabel() }

// NewGroupStatements constructs an empty GroupStatements.
func NewGroupStatements() *GroupStatements { return statement.NewGroupStatements() }

// NewObjectStatements constructs an empty ObjectStatements.
func NewObjectStatements() *ObjectStatements { return statement.NewObjectStatements() }
