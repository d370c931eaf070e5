package statement

import "github.com/pds-tools/odl/value"

// Attribute represents a PDS attribute assignment statement:
// `identifier = value` (spec.md §4.3).
type Attribute struct {
	identifier string
	value      value.Value
}

// NewAttribute constructs an Attribute. When validate is true,
// identifier is checked against the attribute identifier grammar — a
// plain identifier, optionally preceded by a `namespace:` or `^`
// pointer prefix — and rejected with an error on any deviation.
func NewAttribute(identifier string, val value.Value, validate bool) (*Attribute, error) {
	if validate {
		if err := validAttributeIdentifier(identifier); err != nil {
			return nil, err
		}
	}
	return &Attribute{identifier: upperASCII(identifier), value: val}, nil
}

func (a *Attribute) Identifier() string { return a.identifier }
func (a *Attribute) Value() value.Value { return a.value }

func (a *Attribute) format(indent string, width int) string {
	return indent + padRight(a.identifier, width) + " = " + a.value.String()
}

func (a *Attribute) String() string { return a.format("", len(a.identifier)) }
