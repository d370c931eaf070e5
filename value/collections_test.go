package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAcceptsSymbolAndInteger(t *testing.T) {
	sym, _ := NewSymbol("km", true)
	in, _ := NewInteger("1", nil, true)
	set, err := NewSet([]Value{sym, in}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, "{'KM', 1}", set.String())
}

func TestEmptySetEmitsBraces(t *testing.T) {
	set, err := NewSet(nil, true)
	require.NoError(t, err)
	assert.Equal(t, "{}", set.String())
}

func TestSetRejectsWrongElementType(t *testing.T) {
	txt, _ := NewText("nope", true)
	_, err := NewSet([]Value{txt}, true)
	require.Error(t, err)

	set, _ := NewSet(nil, true)
	err = set.Add(txt)
	require.Error(t, err)
}

func TestSequence1DCanonicalForm(t *testing.T) {
	a, _ := NewInteger("1", nil, true)
	b, _ := NewInteger("2", nil, true)
	seq, err := NewSequence1D([]Scalar{a, b}, true)
	require.NoError(t, err)
	assert.Equal(t, "(1, 2)", seq.String())
	assert.NoError(t, seq.Validate())
}

func TestEmptySequence1DAllowedToExistButFailsValidate(t *testing.T) {
	seq, err := NewSequence1D(nil, true)
	require.NoError(t, err, "empty sequence may exist transiently")
	assert.Equal(t, "()", seq.String())
	require.Error(t, seq.Validate(), "empty sequence is rejected on emit")
}

func TestSequence2D(t *testing.T) {
	mk := func(vals ...int64) *Sequence1D {
		elems := make([]Scalar, len(vals))
		for i, v := range vals {
			elems[i] = NewIntegerValue(v, nil)
		}
		seq, _ := NewSequence1D(elems, true)
		return seq
	}
	rows := []*Sequence1D{mk(1, 2, 3), mk(4, 5, 6)}
	seq, err := NewSequence2D(rows, true)
	require.NoError(t, err)
	assert.Equal(t, "((1, 2, 3), (4, 5, 6))", seq.String())
	assert.NoError(t, seq.Validate())
	assert.Equal(t, 2, seq.Len())
}

func TestSequence2DValidatePropagatesFromRows(t *testing.T) {
	empty, _ := NewSequence1D(nil, true)
	seq, err := NewSequence2D([]*Sequence1D{empty}, true)
	require.NoError(t, err)
	require.Error(t, seq.Validate())
}
