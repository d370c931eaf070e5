// Package token defines ODL token types and position tracking.
package token

// Token represents an ODL lexical token class.
type Token int

const (
	ILLEGAL Token = iota
	EOF

	literalBeg
	IDENT         // bare identifier, e.g. PDS_VERSION_ID
	INTEGER       // 123, -45
	BASED_INTEGER // 2#1010#
	REAL          // 1.5, -2.3e10
	TEXT          // "..."
	SYMBOL        // '...'
	DATE          // 2020-01-02 or 2020-060
	TIME          // 12:30:00Z
	DATE_TIME     // DATE "T" TIME
	literalEnd

	punctBeg
	EQUAL      // =
	COMMA      // ,
	DOUBLESTAR // **
	STAR       // *
	SLASH      // /
	CIRCUMFLEX // ^
	LANGLE     // <
	RANGLE     // >
	LPAREN     // (
	RPAREN     // )
	LBRACE     // {
	RBRACE     // }
	COLON      // :
	punctEnd

	reservedBeg
	END         // END
	BEGIN_GROUP // GROUP or BEGIN_GROUP
	END_GROUP   // END_GROUP
	BEGIN_OBJECT
	END_OBJECT
	reservedEnd
)

var tokenNames = map[Token]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENT:         "IDENT",
	INTEGER:       "INTEGER",
	BASED_INTEGER: "BASED_INTEGER",
	REAL:          "REAL",
	TEXT:          "TEXT",
	SYMBOL:        "SYMBOL",
	DATE:          "DATE",
	TIME:          "TIME",
	DATE_TIME:     "DATE_TIME",
	EQUAL:         "=",
	COMMA:         ",",
	DOUBLESTAR:    "**",
	STAR:          "*",
	SLASH:         "/",
	CIRCUMFLEX:    "^",
	LANGLE:        "<",
	RANGLE:        ">",
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACE:        "{",
	RBRACE:        "}",
	COLON:         ":",
	END:           "END",
	BEGIN_GROUP:   "GROUP",
	END_GROUP:     "END_GROUP",
	BEGIN_OBJECT:  "OBJECT",
	END_OBJECT:    "END_OBJECT",
}

// String returns the human-readable name of the token class, used in
// ParseError/LexError messages.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsLiteral reports whether t is one of the scalar literal classes.
func (t Token) IsLiteral() bool {
	return t > literalBeg && t < literalEnd
}

// IsReserved reports whether t is one of the promoted reserved-word classes.
func (t Token) IsReserved() bool {
	return t > reservedBeg && t < reservedEnd
}

// Pos identifies a location in the source byte slice.
type Pos struct {
	Offset int // zero-based byte offset
	Line   int // one-based line number
	Column int // one-based column number
}

// Item is a single scanned token together with its captured payload.
//
// Value holds the raw matched bytes for IDENT/TEXT/SYMBOL/punctuation.
// The numeric/temporal classes additionally populate the typed fields
// below so the parser never has to re-scan Value.
type Item struct {
	Type Token
	Pos  Pos

	Value string // raw/decoded payload (identifier name, text/symbol body, punctuation, or the full INTEGER/REAL literal)

	// BASED_INTEGER only: radix and the raw digit string in that radix,
	// case preserved (the value model derives the canonical base-10 value).
	Radix  int
	Digits string

	// DATE / DATE_TIME
	Year      int
	Month     int // 0 means "not present" (day-of-year form)
	Day       int
	DayOfYear bool // true if Month == 0 and Day is a day-of-year value

	// TIME / DATE_TIME
	Hour          int
	Minute        int
	Second        float64
	HasSecond     bool
	UTC           bool
	HasZone       bool
	ZoneHour      int
	ZoneMinute    int
	HasZoneMinute bool
}
