package core

import (
	"fmt"
	"unicode/utf8"
)

// Differences returns the positions (rune indices) at which a and b differ.
// The words must have equal rune length; otherwise ErrLengthMismatch.
// Complexity: O(L).
func Differences(a, b string) ([]int, error) {
	if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
		return nil, fmt.Errorf("%w: %q (%d) vs %q (%d)", ErrLengthMismatch, a, la, b, lb)
	}

	var diff []int
	pos := 0
	for len(a) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			diff = append(diff, pos)
		}
		a, b = a[na:], b[nb:]
		pos++
	}

	return diff, nil
}

// OneLetterApart reports whether a and b differ in exactly one position.
// Identical words are not one letter apart. Words of different length
// return ErrLengthMismatch rather than a guess.
// Complexity: O(L), stops at the second difference.
func OneLetterApart(a, b string) (bool, error) {
	if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
		return false, fmt.Errorf("%w: %q (%d) vs %q (%d)", ErrLengthMismatch, a, la, b, lb)
	}

	diff := 0
	for len(a) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			diff++
			if diff > 1 {
				return false, nil
			}
		}
		a, b = a[na:], b[nb:]
	}

	return diff == 1, nil
}
