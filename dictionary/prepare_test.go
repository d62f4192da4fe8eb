package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
)

// TestPrepare filters by length and letters, dedups and sorts.
func TestPrepare(t *testing.T) {
	raw := []string{"spot", "spin", "latch", "sp1n", "spin", "", "sp-t", "Spin", "spät", " spa"}
	got := dictionary.Prepare(raw, 4)
	require.Equal(t, []string{"Spin", "spin", "spot", "spät"}, got)
	// input untouched
	require.Equal(t, "spot", raw[0])
}

// TestPrepare_Empty never returns nil.
func TestPrepare_Empty(t *testing.T) {
	got := dictionary.Prepare(nil, 4)
	require.NotNil(t, got)
	require.Empty(t, got)

	got = dictionary.Prepare([]string{"latch", "door"}, 3)
	require.Empty(t, got)
}

// TestIsLetters covers the letter predicate.
func TestIsLetters(t *testing.T) {
	require.True(t, dictionary.IsLetters("spin"))
	require.True(t, dictionary.IsLetters("Über"))
	require.False(t, dictionary.IsLetters(""))
	require.False(t, dictionary.IsLetters("it's"))
	require.False(t, dictionary.IsLetters("r2d2"))
	require.False(t, dictionary.IsLetters("sp n"))
}

// TestFingerprint is stable, order-sensitive and content-sensitive.
func TestFingerprint(t *testing.T) {
	a := dictionary.Fingerprint([]string{"span", "spin"})
	require.Len(t, a, 64)
	require.Equal(t, a, dictionary.Fingerprint([]string{"span", "spin"}))
	require.NotEqual(t, a, dictionary.Fingerprint([]string{"spin", "span"}))
	require.NotEqual(t, a, dictionary.Fingerprint([]string{"span", "spit"}))
	// the separator keeps word boundaries significant
	require.NotEqual(t, dictionary.Fingerprint([]string{"ab", "c"}), dictionary.Fingerprint([]string{"a", "bc"}))
}
