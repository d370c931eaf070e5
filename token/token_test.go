package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	assert.Equal(t, "IDENT", IDENT.String())
	assert.Equal(t, "GROUP", BEGIN_GROUP.String())
	assert.Equal(t, "UNKNOWN", Token(999).String())
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, IDENT.IsLiteral())
	assert.True(t, DATE_TIME.IsLiteral())
	assert.False(t, EQUAL.IsLiteral())
	assert.False(t, END.IsLiteral())
}

func TestIsReserved(t *testing.T) {
	assert.True(t, END.IsReserved())
	assert.True(t, BEGIN_GROUP.IsReserved())
	assert.False(t, IDENT.IsReserved())
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		raw  string
		want Token
	}{
		{"END", END},
		{"end", END},
		{"GROUP", BEGIN_GROUP},
		{"BEGIN_GROUP", BEGIN_GROUP},
		{"End_Group", END_GROUP},
		{"OBJECT", BEGIN_OBJECT},
		{"Begin_Object", BEGIN_OBJECT},
		{"end_object", END_OBJECT},
		{"PDS_VERSION_ID", IDENT},
		{"ENDIAN", IDENT}, // must not partially match "end"
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdent(tt.raw))
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	assert.True(t, IsReservedWord("group"))
	assert.True(t, IsReservedWord("END_OBJECT"))
	assert.False(t, IsReservedWord("IMAGE"))
}
