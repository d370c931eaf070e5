package token

// reserved maps the ASCII-lowercased spelling of each ODL reserved word
// to its promoted token class. GROUP and BEGIN_GROUP both promote to
// BEGIN_GROUP; OBJECT and BEGIN_OBJECT both promote to BEGIN_OBJECT, per
// spec.md §4.1.
var reserved = map[string]Token{
	"end":          END,
	"group":        BEGIN_GROUP,
	"begin_group":  BEGIN_GROUP,
	"end_group":    END_GROUP,
	"object":       BEGIN_OBJECT,
	"begin_object": BEGIN_OBJECT,
	"end_object":   END_OBJECT,
}

// LookupIdent returns the reserved token class for an identifier's raw
// spelling, or IDENT if it is not (ASCII case-insensitively) a reserved
// word.
func LookupIdent(raw string) Token {
	if tok, ok := reserved[lowerASCII(raw)]; ok {
		return tok
	}
	return IDENT
}

// IsReservedWord reports whether raw is (case-insensitively) one of the
// ODL reserved words, regardless of which promoted class it maps to.
func IsReservedWord(raw string) bool {
	_, ok := reserved[lowerASCII(raw)]
	return ok
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
