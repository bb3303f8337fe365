package signup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase trims name, splits it on whitespace and upper-cases the first
// letter of each word, leaving the rest of the word untouched.
//
//	TitleCase("joão  silva") == "João Silva"
func TitleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// ParseAge reads the leading integer of raw: optional leading whitespace,
// an optional sign, then digits. Anything after the digits is ignored, so
// "30x" is 30. ok is false when no digit is found or the digits do not
// fit in an int32.
func ParseAge(raw string) (age int, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if age > (maxAge-int(s[digits]-'0'))/10 {
			return 0, false
		}
		age = age*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		age = -age
	}
	return age, true
}

// maxAge is the largest age ParseAge accepts.
const maxAge = 1<<31 - 1
