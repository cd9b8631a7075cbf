package urlfind

import (
	"strings"
	"unicode"
)

// URLPunct is the punctuation allowed inside a URL, alongside letters
// and digits. It covers the conventional URI punctuation rather than
// the full RFC 3986 grammar.
const URLPunct = "-._~:/?#[]@!$&'()*+,;=%"

// IsURLChar reports whether r may appear inside a URL. Every rune has
// a definite classification; anything outside the allow-set is simply
// not a URL character.
func IsURLChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune(URLPunct, r)
}
