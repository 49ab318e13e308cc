package common

import (
	"strings"
	"unicode/utf16"
)

// UTF16Length returns the length of s counted in UTF-16 code units, the same
// unit the web composer uses when it enforces the post-length limit.
func UTF16Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// Initials derives a short avatar label from a display name: the first
// letter of the first two words, upper-cased. "E-Cell Team" -> "ET".
func Initials(name string) string {
	var b strings.Builder
	for i, w := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// WipeByteArray zeroes a sensitive buffer, e.g. a password after hashing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
