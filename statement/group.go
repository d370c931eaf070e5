package statement

import "strings"

// Group represents a PDS GROUP statement: a named, nested run of
// Attribute statements bracketed by matching GROUP/END_GROUP lines
// (spec.md §4.3).
type Group struct {
	identifier string
	statements *GroupStatements
}

// NewGroup constructs a Group. When validate is true, identifier is
// checked against the plain identifier grammar (no namespace/pointer
// prefix is permitted on a group).
func NewGroup(identifier string, statements *GroupStatements, validate bool) (*Group, error) {
	if validate {
		if err := validPlainIdentifier(identifier); err != nil {
			return nil, err
		}
	}
	return &Group{identifier: upperASCII(identifier), statements: statements}, nil
}

func (g *Group) Identifier() string           { return g.identifier }
func (g *Group) Statements() *GroupStatements { return g.statements }

// format renders the GROUP/END_GROUP block. The "GROUP" and
// "END_GROUP" keywords are always padded to the width of "END_GROUP",
// whatever the containing statement list's column (width is not used);
// the nested attributes are padded to the group's own (unfloored) width.
func (g *Group) format(indent string, width int) string {
	kwWidth := len("END_GROUP")
	subWidth := g.statements.maxIdentifierWidth(0)
	subIndent := indent + " "

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(padRight("GROUP", kwWidth))
	sb.WriteString(" = ")
	sb.WriteString(g.identifier)
	sb.WriteString("\r\n")
	for _, s := range g.statements.stmts {
		sb.WriteString(s.format(subIndent, subWidth))
		sb.WriteString("\r\n")
	}
	sb.WriteString(indent)
	sb.WriteString(padRight("END_GROUP", kwWidth))
	sb.WriteString(" = ")
	sb.WriteString(g.identifier)
	return sb.String()
}

func (g *Group) String() string { return g.format("", 9) }
