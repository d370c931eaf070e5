package value

import "github.com/pds-tools/odl/token"

// validateIdentifierBody checks s against the ODL identifier grammar:
// letter (`_`? alnum)*, and rejects reserved words (spec.md §4.2).
// It does not upper-case s; callers do that once validation passes.
func validateIdentifierBody(s string) error {
	if s == "" {
		return validationErrorf("identifier is empty")
	}
	if !isLetter(s[0]) {
		return validationErrorf("identifier %q must start with a letter", s)
	}
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '_' {
			if i+1 >= len(s) || !isAlnum(s[i+1]) {
				return validationErrorf("identifier %q has a misplaced underscore", s)
			}
			i += 2
			continue
		}
		if !isAlnum(c) {
			return validationErrorf("identifier %q contains invalid character %q", s, c)
		}
		i++
	}
	if token.IsReservedWord(s) {
		return validationErrorf("identifier %q is a reserved word", s)
	}
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
