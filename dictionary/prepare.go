package dictionary

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// IsLetters reports whether w is non-empty and every rune is a letter.
func IsLetters(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Prepare filters raw down to the unique words of exactly length runes that
// consist only of letters, sorted ascending. The result is empty, never
// nil, when nothing qualifies. raw is not modified.
// Complexity: O(N·L + M·log M), M = number of kept words.
func Prepare(raw []string, length int) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0)
	for _, w := range raw {
		if utf8.RuneCountInString(w) != length || !IsLetters(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
