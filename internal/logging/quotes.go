package logging

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeQuotes rewrites single-quoted words into double-quoted ones:
// "loading 'config.yaml'" becomes "loading \"config.yaml\"". A word is a run
// of characters without whitespace or quotes, and the quotes must not touch
// a letter, digit or underscore on the outside, so contractions such as
// "doesn't" are left alone.
func NormalizeQuotes(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '\'' || !boundaryBefore(s, i) {
			b.WriteByte(s[i])
			i++
			continue
		}

		end := closingQuote(s, i+1)
		if end < 0 || !boundaryAfter(s, end+1) {
			b.WriteByte(s[i])
			i++
			continue
		}

		b.WriteByte('"')
		b.WriteString(s[i+1 : end])
		b.WriteByte('"')
		i = end + 1
	}

	return b.String()
}

// closingQuote returns the index of the quote ending a non-empty word that
// starts at start, or -1.
func closingQuote(s string, start int) int {
	for j := start; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		switch {
		case r == '\'':
			if j == start {
				return -1
			}
			return j
		case unicode.IsSpace(r):
			return -1
		}
		j += size
	}
	return -1
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWord(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWord(r)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
