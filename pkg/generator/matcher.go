package generator

import (
	"strings"
)

// MinRunLength is the shortest trailing run of identical characters that
// counts as a vanity address when no patterns are configured.
const MinRunLength = 3

// DefaultPatterns is the preset suffix list offered by the CLI.
var DefaultPatterns = []string{
	"1111", "2222", "3333", "4444", "5555",
	"6666", "7777", "8888", "9999", "0000",
	"AAAA", "BBBB", "CCCC", "DDDD",
}

// MatchPolicy decides whether an address is a vanity address.
// With patterns it is a case-insensitive suffix match in the caller's order;
// without patterns it looks for a trailing run of identical alphanumerics.
type MatchPolicy struct {
	patterns []string // lower-cased, non-empty
	display  []string // as given, for reporting
}

// NewMatchPolicy builds a policy from the given patterns.
// Blank entries are dropped; if none remain the trailing-run rule applies.
func NewMatchPolicy(patterns []string) MatchPolicy {
	var p MatchPolicy
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		p.patterns = append(p.patterns, strings.ToLower(pattern))
		p.display = append(p.display, pattern)
	}
	return p
}

// Patterns returns the effective patterns as given.
func (p MatchPolicy) Patterns() []string {
	out := make([]string, len(p.display))
	copy(out, p.display)
	return out
}

// Matches reports whether the address satisfies the policy.
func (p MatchPolicy) Matches(address string) bool {
	_, ok := p.MatchedPattern(address)
	return ok
}

// MatchedPattern returns the first pattern (in caller order) the address ends
// with, or the trailing run itself when the policy has no patterns.
func (p MatchPolicy) MatchedPattern(address string) (string, bool) {
	lower := strings.ToLower(address)

	if len(p.patterns) > 0 {
		for i, pattern := range p.patterns {
			if strings.HasSuffix(lower, pattern) {
				return p.display[i], true
			}
		}
		return "", false
	}

	run := trailingRun(lower)
	if run < MinRunLength {
		return "", false
	}
	return address[len(address)-run:], true
}

// trailingRun returns the length of the run of identical ASCII alphanumeric
// characters at the end of s.
func trailingRun(s string) int {
	if len(s) == 0 || !isAlphanumeric(s[len(s)-1]) {
		return 0
	}
	last := s[len(s)-1]
	n := 1
	for i := len(s) - 2; i >= 0 && s[i] == last; i-- {
		n++
	}
	return n
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
