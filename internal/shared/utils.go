// Package shared provides small helpers for handling user input and
// rendering it back: secure memory wiping and display truncation.
package shared

import (
	"strings"
	"unicode/utf8"
)

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used for passwords read from the terminal.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// Snippet collapses whitespace in s and cuts it to at most n runes, adding
// an ellipsis when something was cut. n <= 0 returns the collapsed text.
func Snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
