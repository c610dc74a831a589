// Package narrative renders derived chart metrics into the prose handed to
// the presentation layer. Strings keep markdown emphasis; the frontend
// renders them.
package narrative

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lowerFirst lowercases the first rune so a merged sentence reads as one.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// mergeWith joins two per-team sentences with a connective: the first loses
// its final period, the second its leading capital.
func mergeWith(first, second, connective string) string {
	first = strings.TrimRight(strings.TrimSpace(first), ".")
	return first + connective + lowerFirst(strings.TrimSpace(second))
}

func joinOvers(overs []int) string {
	parts := make([]string, len(overs))
	for i, o := range overs {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ", ")
}

// fmtRate prints run rates the way scorecards do: always at least one
// decimal, no trailing zeros beyond that ("6.0", "5.25").
func fmtRate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// fmtStat trims a pre-aggregated stat to its shortest decimal form.
func fmtStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
