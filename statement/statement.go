// Package statement implements the ordered, identifier-keyed PDS
// statement containers (Label, GroupStatements, ObjectStatements) and
// the three statement kinds they hold (Attribute, Group, Object),
// along with their canonical CRLF serialization (spec.md §4.3, §4.5).
package statement

import (
	"fmt"
	"strings"

	"github.com/pds-tools/odl/token"
)

// Statement is implemented by Attribute, Group and Object: anything a
// Label, GroupStatements or ObjectStatements container can hold.
type Statement interface {
	// Identifier returns the statement's (upper-cased) identifier, as
	// written including any namespace/pointer prefix on an Attribute.
	Identifier() string
	format(indent string, width int) string
}

func (a *Attribute) isStatement() {}
func (g *Group) isStatement()     {}
func (o *Object) isStatement()    {}

// validPlainIdentifier checks s against the grammar shared by Group
// and Object identifiers: a letter followed by alnum runs optionally
// separated by single underscores, excluding the reserved words
// (spec.md §4.2; pyds Statement._VALID_IDENT_RE).
func validPlainIdentifier(s string) error {
	if s == "" {
		return fmt.Errorf("identifier is empty")
	}
	if !isLetter(s[0]) {
		return fmt.Errorf("identifier %q must start with a letter", s)
	}
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '_' {
			if i+1 >= len(s) || !isAlnum(s[i+1]) {
				return fmt.Errorf("identifier %q has a misplaced underscore", s)
			}
			i += 2
			continue
		}
		if !isAlnum(c) {
			return fmt.Errorf("identifier %q contains invalid character %q", s, c)
		}
		i++
	}
	if token.IsReservedWord(s) {
		return fmt.Errorf("identifier %q is a reserved word", s)
	}
	return nil
}

// validAttributeIdentifier extends validPlainIdentifier with the
// optional `namespace:` or `^` prefix an attribute identifier may
// carry (pyds Attribute._VALID_IDENT_RE).
func validAttributeIdentifier(s string) error {
	rest := s
	switch {
	case strings.HasPrefix(s, "^"):
		rest = s[1:]
	default:
		if i := strings.IndexByte(s, ':'); i >= 0 {
			if err := validPlainIdentifier(s[:i]); err != nil {
				return fmt.Errorf("invalid namespace in identifier %q: %v", s, err)
			}
			rest = s[i+1:]
		}
	}
	return validPlainIdentifier(rest)
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool  { return isLetter(c) || (c >= '0' && c <= '9') }

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
