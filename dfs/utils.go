// Package dfs provides helper functions for ordering enumerated paths.
package dfs

// Compare lexicographically compares two string slices a and b word by word.
// Returns -1 if a < b, 0 if equal, +1 if a > b. A strict prefix sorts first.
// Time Complexity: O(n).
func Compare(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1 // first differing element a[i] < b[i]
		} else if a[i] > b[i] {
			return 1 // first differing element a[i] > b[i]
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0 // all elements equal
}
