package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	tx, err := NewText("F.IMG", true)
	require.NoError(t, err)
	assert.Equal(t, `"F.IMG"`, tx.String())
	assert.Equal(t, "F.IMG", tx.Value())

	_, err = NewText(`bad"quote`, true)
	require.Error(t, err)
}

func TestNewSymbol(t *testing.T) {
	sym, err := NewSymbol("km", true)
	require.NoError(t, err)
	assert.Equal(t, "'KM'", sym.String())

	_, err = NewSymbol("", true)
	require.Error(t, err)
}

func TestNewIdentifier(t *testing.T) {
	id, err := NewIdentifier("pds3", true)
	require.NoError(t, err)
	assert.Equal(t, "PDS3", id.String())

	_, err = NewIdentifier("END_GROUP", true)
	require.Error(t, err, "reserved words must not be constructible as identifiers")

	_, err = NewIdentifier("1BAD", true)
	require.Error(t, err)
}

func TestScalarEquality(t *testing.T) {
	a, _ := NewIdentifier("pds3", true)
	b, _ := NewIdentifier("PDS3", true)
	assert.True(t, a.Equal(b))

	x, _ := NewText("a", true)
	y, _ := NewText("b", true)
	assert.False(t, x.Equal(y))
}
