// Package text provides content normalization and derived count helpers.
// Every note write runs its content through Normalize before counts are
// computed or anything is persisted.
package text

import (
	"strings"
	"unicode/utf8"
)

// Normalize strips null characters and folds all line-ending styles
// (CRLF, lone CR) into a single \n. It is pure and idempotent.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\x00", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// WordCount returns the number of whitespace-delimited tokens in s.
// An empty or all-whitespace string yields 0.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount returns the number of Unicode code points in s, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
