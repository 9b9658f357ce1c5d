package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s: "solar" -> "Solar".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Plural returns "hour" for n == 1 and "hours" otherwise.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// CenterText pads s with spaces on both sides to width runes. Longer input is
// returned unchanged.
func CenterText(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
