package solana

import (
	"strings"
)

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsValidBase58 checks if a string contains only valid Base58 characters.
// Base58 excludes: 0 (zero), O (uppercase o), I (uppercase i), l (lowercase L)
func IsValidBase58(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	return true
}

// CanMatch reports whether a case-insensitive suffix pattern can appear in
// a Solana address: each character needs a Base58 spelling in either case.
func CanMatch(pattern string) bool {
	for _, c := range pattern {
		lower := strings.ToLower(string(c))
		upper := strings.ToUpper(string(c))
		if !strings.Contains(base58Alphabet, lower) && !strings.Contains(base58Alphabet, upper) {
			return false
		}
	}
	return true
}
