package value

import "strings"

// Set represents a PDS `{...}` set value. Only Symbol and Integer
// elements are admitted (spec.md §3 Invariant 3); order is
// unspecified on emit.
type Set struct {
	elems []Value
}

// NewSet constructs a Set from elems. When validate is true, every
// element must be a *Symbol or *Integer.
func NewSet(elems []Value, validate bool) (*Set, error) {
	if validate {
		for _, e := range elems {
			if err := checkSetElement(e); err != nil {
				return nil, err
			}
		}
	}
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return &Set{elems: cp}, nil
}

func checkSetElement(v Value) error {
	switch v.(type) {
	case *Symbol, *Integer:
		return nil
	default:
		return validationErrorf("set element is not a Symbol or Integer")
	}
}

// Add appends value to the set, returning *ValidationError if value is
// not a Symbol or Integer.
func (s *Set) Add(v Value) error {
	if err := checkSetElement(v); err != nil {
		return err
	}
	s.elems = append(s.elems, v)
	return nil
}

// Elements returns the set's members in insertion order. Order is not
// part of the canonical form (spec.md §4.5) but is kept stable here
// for deterministic serialization of a given in-memory Set.
func (s *Set) Elements() []Value {
	cp := make([]Value, len(s.elems))
	copy(cp, s.elems)
	return cp
}

func (s *Set) Len() int { return len(s.elems) }

func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s *Set) Equal(other Value) bool {
	o, ok := other.(*Set)
	if !ok || len(s.elems) != len(o.elems) {
		return false
	}
	used := make([]bool, len(o.elems))
	for _, a := range s.elems {
		found := false
		for j, b := range o.elems {
			if !used[j] && a.Equal(b) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (*Set) isValue() {}

// Sequence1D represents a PDS `(...)` one-dimensional sequence of
// scalars. An empty Sequence1D may exist transiently; Validate rejects
// it with *ValidationError, and format.Format calls Validate before
// emitting (spec.md §4.5, §8).
type Sequence1D struct {
	elems []Scalar
}

// NewSequence1D constructs a Sequence1D from elems. When validate is
// true, every element must satisfy the Scalar interface (enforced by
// the type system already; validate exists for API symmetry with the
// other constructors and to reject a nil Scalar slot).
func NewSequence1D(elems []Scalar, validate bool) (*Sequence1D, error) {
	if validate {
		for _, e := range elems {
			if e == nil {
				return nil, validationErrorf("sequence element is nil")
			}
		}
	}
	cp := make([]Scalar, len(elems))
	copy(cp, elems)
	return &Sequence1D{elems: cp}, nil
}

func (s *Sequence1D) Elements() []Scalar {
	cp := make([]Scalar, len(s.elems))
	copy(cp, s.elems)
	return cp
}

func (s *Sequence1D) Len() int { return len(s.elems) }

// String returns the canonical `(e, e, ...)` form; an empty sequence
// renders as "()", since Value.String() cannot return an error.
// Callers that must detect the empty-sequence case use Validate()
// first; the format package always does so before emitting (spec.md §4.5).
func (s *Sequence1D) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range s.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Validate reports *ValidationError if the sequence has no elements,
// the condition spec.md §4.5/§7/§8 requires be caught at emit time.
func (s *Sequence1D) Validate() error {
	if len(s.elems) == 0 {
		return validationErrorf("sequence does not contain at least 1 value")
	}
	return nil
}

func (s *Sequence1D) Equal(other Value) bool {
	o, ok := other.(*Sequence1D)
	if !ok || len(s.elems) != len(o.elems) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (*Sequence1D) isValue() {}

// Sequence2D represents a PDS two-dimensional sequence: a list of
// Sequence1D rows.
type Sequence2D struct {
	rows []*Sequence1D
}

// NewSequence2D constructs a Sequence2D from rows.
func NewSequence2D(rows []*Sequence1D, validate bool) (*Sequence2D, error) {
	if validate {
		for _, r := range rows {
			if r == nil {
				return nil, validationErrorf("sequence row is nil")
			}
		}
	}
	cp := make([]*Sequence1D, len(rows))
	copy(cp, rows)
	return &Sequence2D{rows: cp}, nil
}

func (s *Sequence2D) Rows() []*Sequence1D {
	cp := make([]*Sequence1D, len(s.rows))
	copy(cp, s.rows)
	return cp
}

func (s *Sequence2D) Len() int { return len(s.rows) }

func (s *Sequence2D) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, r := range s.rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Validate reports *ValidationError if the outer sequence or any row
// is empty.
func (s *Sequence2D) Validate() error {
	if len(s.rows) == 0 {
		return validationErrorf("sequence does not contain at least 1 value")
	}
	for _, r := range s.rows {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sequence2D) Equal(other Value) bool {
	o, ok := other.(*Sequence2D)
	if !ok || len(s.rows) != len(o.rows) {
		return false
	}
	for i := range s.rows {
		if !s.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

func (*Sequence2D) isValue() {}
