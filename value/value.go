// Package value implements the typed ODL value model: scalars (numeric,
// textual, symbolic, temporal), units, and the set/sequence collection
// values, each with a validating constructor and canonical serialization
// (spec.md §3, §4.2).
package value

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Value is implemented by every ODL value variant: scalars, Set,
// Sequence1D and Sequence2D.
type Value interface {
	// String returns the canonical ODL serialization of the value.
	String() string
	// Equal reports whether other is the same kind of Value with
	// canonically-equal fields (spec.md §3 Invariant on equality).
	Equal(other Value) bool
	isValue()
}

// Scalar is implemented by the atomic value variants: Integer,
// BasedInteger, Real, Text, Symbol, Identifier, Date, Time, DateTime.
// Sequence1D admits only Scalar elements (spec.md §3 Invariant 4).
type Scalar interface {
	Value
	isScalar()
}

// ValidationError reports a value the model rejected: an out-of-range
// date/time field, a bad radix, a malformed identifier/units
// expression, a wrong element type in a Set/Sequence, a duplicate
// statement identifier, or an out-of-range container index (spec.md
// §7 names exactly three error kinds; all of these are this one).
type ValidationError struct {
	Reason string
	Err    error // the underlying cause, if any (e.g. a strconv failure)
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// wrapValidationError builds a ValidationError around an underlying
// cause (e.g. the strconv error behind a malformed integer literal),
// attaching a stack trace via pkg/errors so callers that walk Unwrap
// see exactly where construction failed.
func wrapValidationError(cause error, format string, args ...any) *ValidationError {
	wrapped := pkgerrors.Wrap(cause, fmt.Sprintf(format, args...))
	return &ValidationError{Reason: wrapped.Error(), Err: wrapped}
}

// NewValidationError constructs a ValidationError for callers outside
// this package — namely statement's containers, which raise
// ValidationError for a duplicate identifier, an out-of-range index,
// or the wrong statement kind (spec.md §7, §4.4).
func NewValidationError(format string, args ...any) *ValidationError {
	reason := fmt.Sprintf(format, args...)
	return &ValidationError{Reason: reason, Err: pkgerrors.New(reason)}
}
