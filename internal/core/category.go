package core

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory collapses runs of whitespace, upper-cases the first
// letter of each whitespace separated word and lower-cases the rest
// ("eating  out" -> "Eating Out", "take-out" -> "Take-out").
func NormalizeCategory(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	// Casers are stateful, so they are built per call.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}

// UniqueCategories drops blanks and duplicates, keeping first occurrence order.
func UniqueCategories(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
