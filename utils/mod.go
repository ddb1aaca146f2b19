package utils

import (
	"unicode"
	"unicode/utf8"
)

// FindIndex returns the position of item in slice, or -1 if it is absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Capitalize upper-cases the first letter of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
