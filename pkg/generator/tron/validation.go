package tron

import (
	"strings"
)

// Base58 alphabet for validation (excludes 0, O, I, l)
const validBase58Chars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsValidBase58 checks if a string contains only valid Base58 characters.
// Base58 excludes: 0 (zero), O (uppercase o), I (uppercase i), l (lowercase L)
func IsValidBase58(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(validBase58Chars, c) {
			return false
		}
	}
	return true
}

// CanMatch reports whether a case-insensitive suffix pattern can ever
// appear at the end of a Tron address. Every character must have at least
// one Base58 spelling ("0" has none; "o", "i" and "l" each have one).
func CanMatch(pattern string) bool {
	for _, c := range pattern {
		if !strings.ContainsRune(validBase58Chars, c) &&
			!strings.ContainsRune(validBase58Chars, toggleCase(c)) {
			return false
		}
	}
	return true
}

// UnmatchableChars returns the pattern characters no Base58 address can contain.
// Useful for providing helpful error messages to users.
func UnmatchableChars(pattern string) []rune {
	var invalid []rune
	for _, c := range pattern {
		if !CanMatch(string(c)) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

func toggleCase(c rune) rune {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	default:
		return c
	}
}
