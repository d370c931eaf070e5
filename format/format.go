// Package format serializes a statement.Label to its canonical ODL
// byte representation (spec.md §4.5): CRLF line endings, identifier
// padding, and the trailing `END ` marker are already produced by the
// statement package's String methods — Formatter's job is to validate
// every Sequence1D/Sequence2D in the tree before emission (a sequence
// that is empty on emit is a *ValidationError*, not merely cosmetic)
// and to expose both byte and string output, mirroring the original's
// __str__/__bytes__ duality.
package format

import (
	"bytes"

	"github.com/pds-tools/odl/statement"
	"github.com/pds-tools/odl/value"
)

// Formatter renders a Label to canonical ASCII bytes.
type Formatter struct {
	buf bytes.Buffer
}

// New creates an empty Formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format validates label's value tree and returns a new Formatter
// holding its canonical serialization.
func Format(label *statement.Label) (*Formatter, error) {
	if err := validateStatements(label.Statements()); err != nil {
		return nil, err
	}
	f := &Formatter{}
	f.buf.WriteString(label.String())
	return f, nil
}

// Bytes returns the formatted label as ASCII bytes.
func (f *Formatter) Bytes() []byte { return f.buf.Bytes() }

// String returns the formatted label as a string.
func (f *Formatter) String() string { return f.buf.String() }

func validateStatements(stmts []statement.Statement) error {
	for _, s := range stmts {
		switch st := s.(type) {
		case *statement.Attribute:
			if err := validateValue(st.Value()); err != nil {
				return err
			}
		case *statement.Group:
			if err := validateStatements(st.Statements().Statements()); err != nil {
				return err
			}
		case *statement.Object:
			if err := validateStatements(st.Statements().Statements()); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatable is implemented by the value kinds that can be
// structurally well-formed yet unemittable (spec.md §4.5): an empty
// Sequence1D/Sequence2D.
type validatable interface {
	Validate() error
}

func validateValue(v value.Value) error {
	if vv, ok := v.(validatable); ok {
		return vv.Validate()
	}
	return nil
}
