package stems

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeGreek returns s in Unicode NFC with surrounding space removed.
// Lexicon files may store breathings and accents as combining marks;
// every prefix table in this package is written precomposed, so input
// has to be composed before it is compared.
func NormalizeGreek(s string) string {
	s = strings.TrimSpace(s)
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
