package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pds-tools/odl/parser"
	"github.com/pds-tools/odl/statement"
	"github.com/pds-tools/odl/value"
)

func TestFormatMinimalLabel(t *testing.T) {
	input := "PDS_VERSION_ID = PDS3\r\nEND "
	p, err := parser.New([]byte(input))
	require.NoError(t, err)
	label, err := p.ParseLabel()
	require.NoError(t, err)

	f, err := Format(label)
	require.NoError(t, err)
	assert.Equal(t, input, f.String())
	assert.Equal(t, []byte(input), f.Bytes())
}

func TestFormatRejectsEmptySequence1D(t *testing.T) {
	label := statement.NewLabel()
	seq, err := value.NewSequence1D(nil, true)
	require.NoError(t, err)
	attr, err := statement.NewAttribute("BAD", seq, true)
	require.NoError(t, err)
	require.NoError(t, label.Append(attr))

	_, err = Format(label)
	require.Error(t, err, "an empty Sequence1D must fail validation at format time")
}

func TestFormatValidatesNestedGroupsAndObjects(t *testing.T) {
	objStmts := statement.NewObjectStatements()
	groupStmts := statement.NewGroupStatements()
	seq, _ := value.NewSequence1D(nil, true)
	attr, _ := statement.NewAttribute("BAD", seq, true)
	require.NoError(t, groupStmts.Append(attr))
	group, err := statement.NewGroup("CAMERA", groupStmts, true)
	require.NoError(t, err)
	require.NoError(t, objStmts.Append(group))
	obj, err := statement.NewObject("IMAGE", objStmts, true)
	require.NoError(t, err)

	label := statement.NewLabel()
	require.NoError(t, label.Append(obj))

	_, err = Format(label)
	require.Error(t, err, "validation recurses through Object and Group bodies")
}

func TestNewFormatterIsEmpty(t *testing.T) {
	f := New()
	assert.Equal(t, "", f.String())
	assert.Empty(t, f.Bytes())
}
