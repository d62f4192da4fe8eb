package ladder

import (
	"unicode/utf8"
)

// Validate checks start and end before the dictionary is consulted, in
// order, and returns the first violation:
//
//  1. start non-empty   → KindInvalidWord
//  2. end non-empty     → KindInvalidWord
//  3. start != end      → KindWordsAreSame
//  4. equal rune length → KindWordLengthMismatch
func Validate(start, end string) error {
	if start == "" {
		return newError(KindInvalidWord, start, "start word is empty")
	}
	if end == "" {
		return newError(KindInvalidWord, end, "end word is empty")
	}
	if start == end {
		return newError(KindWordsAreSame, start, "start and end words must be different: %q", start)
	}
	if ls, le := utf8.RuneCountInString(start), utf8.RuneCountInString(end); ls != le {
		return newError(KindWordLengthMismatch, end,
			"start and end words must be of equal length: %q (%d) and %q (%d)", start, ls, end, le)
	}
	return nil
}

// checkDictionary runs the post-preparation checks: a non-empty valid set
// (KindNoValidWords), then membership of start and of end
// (KindWordNotInDictionary).
func checkDictionary(valid []string, start, end string) error {
	if len(valid) == 0 {
		return newError(KindNoValidWords, "",
			"dictionary contains no valid words of length %d", utf8.RuneCountInString(start))
	}
	members := make(map[string]struct{}, len(valid))
	for _, w := range valid {
		members[w] = struct{}{}
	}
	for _, w := range [2]string{start, end} {
		if _, ok := members[w]; !ok {
			return newError(KindWordNotInDictionary, w, "%q not found in dictionary", w)
		}
	}
	return nil
}
