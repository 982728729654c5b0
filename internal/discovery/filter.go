package discovery

import (
	"strings"
)

// Filter selects test names with a ':'-separated list of glob patterns.
// A pattern prefixed with '-' excludes the names it matches.
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Matches reports whether name is selected by expr.
//
// Tokens are scanned left to right. A matching negative token rejects the
// name at once, even after an earlier positive token matched. A matching
// positive token accepts the name unless a later negative token matches.
// An empty expression selects everything.
func (f *Filter) Matches(expr, name string) bool {
	if expr == "" {
		return true
	}

	accepted := false
	for _, token := range strings.Split(expr, ":") {
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, "-") {
			if Match(token[1:], name) {
				return false
			}
			continue
		}
		if Match(token, name) {
			accepted = true
		}
	}
	return accepted
}

// MatchesTest reports whether suite.test is selected by expr.
func (f *Filter) MatchesTest(expr, suite, test string) bool {
	return f.Matches(expr, suite+"."+test)
}

// Match reports whether name matches the glob pattern. '*' matches any run
// of characters including none, '?' matches exactly one character and every
// other character matches itself.
func Match(pattern, name string) bool {
	p, s := []rune(pattern), []rune(name)
	pi, si := 0, 0
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(p) && (p[pi] == '?' || p[pi] == s[si]):
			pi++
			si++
		case pi < len(p) && p[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			// widen the last '*' by one character and retry
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}

	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
