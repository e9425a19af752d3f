package textutil

import (
	"strings"
	"unicode/utf8"
)

// Truncate returns at most n characters of s. Characters are runes, so Cyrillic or accented
// text is never cut inside a multi-byte sequence.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// SingleLine collapses every run of whitespace, newlines included, into one space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
