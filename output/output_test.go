package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/output"
)

// TestWriteFile writes one word per line and overwrites.
func TestWriteFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resultfile.txt")
	require.NoError(t, os.WriteFile(p, []byte("stale\ncontent\nhere\nand more\n"), 0o644))

	require.NoError(t, output.WriteFile(p, []string{"spin", "spit", "spot"}))
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "spin\nspit\nspot\n", string(data))
}

// TestWriteFile_Empty removes the destination instead of writing it.
func TestWriteFile_Empty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resultfile.txt")
	require.NoError(t, os.WriteFile(p, []byte("spin\n"), 0o644))

	require.NoError(t, output.WriteFile(p, nil))
	_, err := os.Stat(p)
	require.True(t, os.IsNotExist(err))

	// nothing to remove is fine too
	require.NoError(t, output.WriteFile(p, []string{}))
}

// TestWriteFile_Error surfaces ErrWrite.
func TestWriteFile_Error(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "dir", "out.txt")
	err := output.WriteFile(p, []string{"spin"})
	require.ErrorIs(t, err, output.ErrWrite)
}

// TestRenderer_Plain formats ladders without styling.
func TestRenderer_Plain(t *testing.T) {
	r := output.NewRenderer(&bytes.Buffer{}, false)
	require.Equal(t, "spin → spit → spot", r.Ladder([]string{"spin", "spit", "spot"}))
	require.Equal(t, "", r.Ladder(nil))

	all := r.All([][]string{
		{"hit", "hot", "dot", "dog", "cog"},
		{"hit", "hot", "lot", "log", "cog"},
	})
	require.Equal(t, "1. hit → hot → dot → dog → cog\n2. hit → hot → lot → log → cog\n", all)
}

// TestRenderer_Color keeps every letter visible when styled.
func TestRenderer_Color(t *testing.T) {
	r := output.NewRenderer(&bytes.Buffer{}, true)
	got := r.Ladder([]string{"spin", "spit", "spot"})
	for _, ch := range []string{"s", "p", "i", "n", "t", "o", "→"} {
		require.True(t, strings.Contains(got, ch), "missing %q in %q", ch, got)
	}
}
