package statement

import "strings"

// Object represents a PDS OBJECT statement: a named, nested run of
// Attribute, Group and Object statements bracketed by matching
// OBJECT/END_OBJECT lines (spec.md §4.3).
type Object struct {
	identifier string
	statements *ObjectStatements
}

// NewObject constructs an Object. When validate is true, identifier is
// checked against the plain identifier grammar.
func NewObject(identifier string, statements *ObjectStatements, validate bool) (*Object, error) {
	if validate {
		if err := validPlainIdentifier(identifier); err != nil {
			return nil, err
		}
	}
	return &Object{identifier: upperASCII(identifier), statements: statements}, nil
}

func (o *Object) Identifier() string            { return o.identifier }
func (o *Object) Statements() *ObjectStatements { return o.statements }

// format renders the OBJECT/END_OBJECT block. The nested statements
// are padded to the object's own width, floored at 10 like a label's
// top-level statements.
func (o *Object) format(indent string, width int) string {
	subWidth := o.statements.maxIdentifierWidth(10)
	subIndent := indent + " "

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(padRight("OBJECT", width))
	sb.WriteString(" = ")
	sb.WriteString(o.identifier)
	sb.WriteString("\r\n")
	for _, s := range o.statements.stmts {
		sb.WriteString(s.format(subIndent, subWidth))
		sb.WriteString("\r\n")
	}
	sb.WriteString(indent)
	sb.WriteString(padRight("END_OBJECT", width))
	sb.WriteString(" = ")
	sb.WriteString(o.identifier)
	return sb.String()
}

func (o *Object) String() string { return o.format("", 10) }
