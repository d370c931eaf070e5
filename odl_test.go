package odl

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pds-tools/odl/value"
)

func TestParseAndFormatRoundTrip(t *testing.T) {
	tests := []string{
		"PDS_VERSION_ID = PDS3\r\nEND ",
		"GROUP     = CAMERA\r\n EXPOSURE = 1.5 <SECONDS>\r\nEND_GROUP = CAMERA\r\nEND ",
		"MASK       = 2#1010# <BIT>\r\nEND ",
		"LINES      = ((1, 2, 3), (4, 5, 6))\r\nEND ",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			label, err := Parse([]byte(input))
			require.NoError(t, err)

			out, err := FormatString(label)
			require.NoError(t, err)
			assert.Equal(t, input, out)
		})
	}
}

// TestRoundTripStability checks spec.md's universal invariant:
// parse(emit(L)) must equal L under field equality, not just byte
// equality of the re-emitted text.
func TestRoundTripStability(t *testing.T) {
	input := `PDS_VERSION_ID = PDS3
RECORD_TYPE = FIXED_LENGTH
^IMAGE = ("F.IMG", 2)
GROUP = CAMERA
 EXPOSURE = 1.5 <SECONDS>
 FILTER = {'RED', 'GREEN', 'BLUE'}
END_GROUP = CAMERA
END `
	normalized := toCRLF(input)
	label, err := Parse([]byte(normalized))
	require.NoError(t, err)

	emitted, err := Format(label)
	require.NoError(t, err)

	reparsed, err := Parse(emitted)
	require.NoError(t, err)

	if diff := pretty.Diff(label, reparsed); len(diff) != 0 {
		t.Errorf("re-parsed label differs from original: %v", diff)
	}
}

func toCRLF(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' && (i == 0 || s[i-1] != '\r') {
			out = append(out, '\r', '\n')
		} else {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func TestParseTrailingBytesAfterENDAreIgnored(t *testing.T) {
	input := "PDS_VERSION_ID = PDS3\r\nEND \x00\x01binary-data-follows"
	label, err := Parse([]byte(input))
	require.NoError(t, err)
	_, ok := label.GetByKey("PDS_VERSION_ID")
	assert.True(t, ok)
}

func TestBuildLabelProgrammatically(t *testing.T) {
	label := NewLabel()
	id, err := value.NewIdentifier("pds3", true)
	require.NoError(t, err)
	require.NoError(t, label.SetByKey("PDS_VERSION_ID", id))

	out, err := FormatString(label)
	require.NoError(t, err)
	assert.Equal(t, "PDS_VERSION_ID = PDS3\r\nEND ", out)
}
