package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pds-tools/odl/value"
)

func mustIdent(t *testing.T, v string) *value.Identifier {
	t.Helper()
	id, err := value.NewIdentifier(v, true)
	require.NoError(t, err)
	return id
}

func TestAttributeFormat(t *testing.T) {
	attr, err := NewAttribute("PDS_VERSION_ID", mustIdent(t, "pds3"), true)
	require.NoError(t, err)
	assert.Equal(t, "PDS_VERSION_ID = PDS3", attr.format("", 14))
	assert.Equal(t, "PDS_VERSION_ID    = PDS3", attr.format("", 17))
}

func TestAttributeRejectsReservedIdentifier(t *testing.T) {
	_, err := NewAttribute("END_GROUP", mustIdent(t, "x"), true)
	require.Error(t, err, "constructing an Attribute with a reserved identifier must fail")
}

func TestAttributeAllowsNamespaceAndPointerPrefixes(t *testing.T) {
	_, err := NewAttribute("NAMESPACE:NAME", mustIdent(t, "x"), true)
	require.NoError(t, err)

	_, err = NewAttribute("^IMAGE", mustIdent(t, "x"), true)
	require.NoError(t, err)
}

func TestGroupAdmitsOnlyAttributes(t *testing.T) {
	gs := NewGroupStatements()
	attr, err := NewAttribute("EXPOSURE", mustIdent(t, "x"), true)
	require.NoError(t, err)
	require.NoError(t, gs.Append(attr))
	assert.Equal(t, 1, gs.Len())
}

func TestGroupFormat(t *testing.T) {
	gs := NewGroupStatements()
	units, _ := value.NewUnits("seconds", true)
	real, _ := value.NewReal("1.5", units, true)
	attr, err := NewAttribute("EXPOSURE", real, true)
	require.NoError(t, err)
	require.NoError(t, gs.Append(attr))

	g, err := NewGroup("camera", gs, true)
	require.NoError(t, err)
	want := "GROUP     = CAMERA\r\n EXPOSURE = 1.5 <SECONDS>\r\nEND_GROUP = CAMERA"
	assert.Equal(t, want, g.format("", 9))
}

func TestObjectFloorsNestedWidthAtTen(t *testing.T) {
	os := NewObjectStatements()
	attr, err := NewAttribute("A", mustIdent(t, "x"), true)
	require.NoError(t, err)
	require.NoError(t, os.Append(attr))

	o, err := NewObject("IMAGE", os, true)
	require.NoError(t, err)
	got := o.format("", 10)
	assert.Contains(t, got, " A          = X") // "A" padded to width 10 plus " = "
}

func TestLabelAppendAndString(t *testing.T) {
	l := NewLabel()
	attr, err := NewAttribute("PDS_VERSION_ID", mustIdent(t, "pds3"), true)
	require.NoError(t, err)
	require.NoError(t, l.Append(attr))
	assert.Equal(t, "PDS_VERSION_ID = PDS3\r\nEND ", l.String())
}

func TestEmptyLabelString(t *testing.T) {
	l := NewLabel()
	assert.Equal(t, "\r\nEND ", l.String())
}

func TestLabelRejectsDuplicateIdentifierCaseInsensitively(t *testing.T) {
	l := NewLabel()
	a1, _ := NewAttribute("NAME", mustIdent(t, "x"), true)
	a2, _ := NewAttribute("name", mustIdent(t, "y"), true)
	require.NoError(t, l.Append(a1))
	err := l.Append(a2)
	require.Error(t, err)
}

func TestInsertNegativeAndOutOfRangeIndexClamping(t *testing.T) {
	l := NewLabel()
	a, _ := NewAttribute("A", mustIdent(t, "x"), true)
	b, _ := NewAttribute("B", mustIdent(t, "x"), true)
	c, _ := NewAttribute("C", mustIdent(t, "x"), true)
	require.NoError(t, l.Insert(0, a))
	require.NoError(t, l.Insert(100, b)) // clamps to end
	require.NoError(t, l.Insert(-100, c)) // clamps to 0

	stmts := l.Statements()
	require.Len(t, stmts, 3)
	assert.Equal(t, "C", stmts[0].Identifier())
	assert.Equal(t, "A", stmts[1].Identifier())
	assert.Equal(t, "B", stmts[2].Identifier())
}

func TestGetAndPopNegativeIndex(t *testing.T) {
	l := NewLabel()
	a, _ := NewAttribute("A", mustIdent(t, "x"), true)
	b, _ := NewAttribute("B", mustIdent(t, "x"), true)
	require.NoError(t, l.Append(a))
	require.NoError(t, l.Append(b))

	last, err := l.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, "B", last.Identifier())

	popped, err := l.Pop(-2)
	require.NoError(t, err)
	assert.Equal(t, "A", popped.Identifier())
	assert.Equal(t, 1, l.Len())

	_, err = l.Get(5)
	require.Error(t, err)
}

func TestOrderPreservedAfterPop(t *testing.T) {
	l := NewLabel()
	for _, id := range []string{"A", "B", "C", "D"} {
		attr, _ := NewAttribute(id, mustIdent(t, "x"), true)
		require.NoError(t, l.Append(attr))
	}
	_, err := l.Pop(1) // remove B
	require.NoError(t, err)
	var order []string
	for _, s := range l.Statements() {
		order = append(order, s.Identifier())
	}
	assert.Equal(t, []string{"A", "C", "D"}, order)
}

func TestSetByKeyDispatchesOnValueKind(t *testing.T) {
	l := NewLabel()

	require.NoError(t, l.SetByKey("PDS_VERSION_ID", mustIdent(t, "pds3")))
	stmt, ok := l.GetByKey("pds_version_id")
	require.True(t, ok)
	_, isAttr := stmt.(*Attribute)
	assert.True(t, isAttr)

	gs := NewGroupStatements()
	require.NoError(t, l.SetByKey("CAMERA", gs))
	stmt, ok = l.GetByKey("CAMERA")
	require.True(t, ok)
	_, isGroup := stmt.(*Group)
	assert.True(t, isGroup)

	os := NewObjectStatements()
	require.NoError(t, l.SetByKey("IMAGE", os))
	stmt, ok = l.GetByKey("IMAGE")
	require.True(t, ok)
	_, isObject := stmt.(*Object)
	assert.True(t, isObject)
}

func TestSetByKeyReplacesInPlace(t *testing.T) {
	l := NewLabel()
	require.NoError(t, l.SetByKey("NAME", mustIdent(t, "first")))
	require.NoError(t, l.SetByKey("NAME", mustIdent(t, "second")))
	assert.Equal(t, 1, l.Len())
	stmt, _ := l.GetByKey("NAME")
	attr := stmt.(*Attribute)
	assert.Equal(t, "SECOND", attr.Value().String())
}

func TestSetByKeyRejectsUnsupportedType(t *testing.T) {
	l := NewLabel()
	err := l.SetByKey("NAME", 42)
	require.Error(t, err)
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	l := NewLabel()
	attr, _ := NewAttribute("NAME", mustIdent(t, "x"), true)
	require.NoError(t, l.Append(attr))
	assert.True(t, l.Contains("name"))
	assert.True(t, l.Contains("NAME"))
	assert.False(t, l.Contains("OTHER"))
}
