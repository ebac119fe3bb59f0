package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// whitespace is the ECMAScript white space and line terminator set. RE2's \s
// only covers ASCII, and unicode.IsSpace also accepts U+0085 which browsers do not.
const whitespace = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{feff}`

var emailPattern = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]{2,}$`)

// NormalizeEmail coerces a decoded JSON value into a trimmed, lowercased
// address. Anything other than a string normalizes to "", arrays included.
func NormalizeEmail(value any) string {
	email, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimFunc(email, isWhitespace))
}

// IsValidEmail reports whether email looks like local@domain.tld with a
// top-level label of at least two characters.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
