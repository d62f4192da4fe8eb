package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
)

// spinWords is the five-word fixture shared by the core tests.
var spinWords = []string{"spin", "spit", "spat", "spot", "span"}

// TestNewGraph_Dedup verifies duplicates collapse and vertices come back sorted.
func TestNewGraph_Dedup(t *testing.T) {
	g, err := core.NewGraph([]string{"spot", "spin", "spot", "span"})
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, []string{"span", "spin", "spot"}, g.Vertices())
	require.Equal(t, 4, g.WordLength())
}

// TestNewGraph_Errors covers empty words and mixed lengths.
func TestNewGraph_Errors(t *testing.T) {
	_, err := core.NewGraph([]string{"spin", ""})
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = core.NewGraph([]string{"spin", "latch"})
	require.ErrorIs(t, err, core.ErrLengthMismatch)
}

// TestNewGraph_Empty allows an empty vertex set.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(nil)
	require.NoError(t, err)
	require.Zero(t, g.VertexCount())
	require.Zero(t, g.WordLength())
	require.False(t, g.HasVertex("spin"))
}

// TestVertices_IsCopy ensures callers cannot mutate the vertex set.
func TestVertices_IsCopy(t *testing.T) {
	g, err := core.NewGraph(spinWords)
	require.NoError(t, err)
	vs := g.Vertices()
	vs[0] = "zzzz"
	require.False(t, g.HasVertex("zzzz"))
}

// TestNeighborIDs checks adjacency on the spin fixture.
func TestNeighborIDs(t *testing.T) {
	g, err := core.NewGraph(spinWords)
	require.NoError(t, err)

	cases := map[string][]string{
		"spin": {"span", "spit"},
		"spit": {"spat", "spin", "spot"},
		"spat": {"span", "spit", "spot"},
		"spot": {"spat", "spit"},
		"span": {"spat", "spin"},
	}
	for word, want := range cases {
		got, err := g.NeighborIDs(word)
		require.NoError(t, err)
		require.Equal(t, want, got, "neighbors of %s", word)
	}
}

// TestNeighborIDs_Isolated returns an empty, non-nil slice for isolated words.
func TestNeighborIDs_Isolated(t *testing.T) {
	g, err := core.NewGraph(append([]string{"door"}, spinWords...))
	require.NoError(t, err)
	got, err := g.NeighborIDs("door")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestNeighborIDs_Errors covers empty and unknown words.
func TestNeighborIDs_Errors(t *testing.T) {
	g, err := core.NewGraph(spinWords)
	require.NoError(t, err)

	_, err = g.NeighborIDs("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.NeighborIDs("spiv")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNeighborIDs_MatchesPredicate cross-checks the bucket index against a
// brute-force scan with OneLetterApart.
func TestNeighborIDs_MatchesPredicate(t *testing.T) {
	words := []string{
		"cold", "cord", "card", "ward", "warm", "word", "worm", "wore",
		"core", "bore", "bord", "cola", "colt", "molt", "mold", "wold",
	}
	g, err := core.NewGraph(words)
	require.NoError(t, err)

	for _, w := range g.Vertices() {
		var want []string
		for _, other := range g.Vertices() {
			ok, err := core.OneLetterApart(w, other)
			require.NoError(t, err)
			if ok {
				want = append(want, other)
			}
		}
		got, err := g.NeighborIDs(w)
		require.NoError(t, err)
		if len(want) == 0 {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, want, got, "neighbors of %s", w)
	}
}

// TestAdjacent covers membership, length and predicate outcomes.
func TestAdjacent(t *testing.T) {
	g, err := core.NewGraph(spinWords)
	require.NoError(t, err)

	ok, err := g.Adjacent("spin", "spit")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.Adjacent("spin", "spot")
	require.NoError(t, err)
	require.False(t, ok)

	// spiv is one letter from spin but not a vertex
	ok, err = g.Adjacent("spin", "spiv")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = g.Adjacent("spin", "latch")
	require.ErrorIs(t, err, core.ErrLengthMismatch)

	_, err = g.Adjacent("", "spin")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestNeighborIDs_ConcurrentReaders exercises the memo under parallel access.
// Assertions are collected and checked on the test goroutine.
func TestNeighborIDs_ConcurrentReaders(t *testing.T) {
	g, err := core.NewGraph(spinWords)
	require.NoError(t, err)

	const readers = 32
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := spinWords[i%len(spinWords)]
			if _, err := g.NeighborIDs(w); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("NeighborIDs: %v", err)
	}

	got, err := g.NeighborIDs("spit")
	require.NoError(t, err)
	require.Equal(t, []string{"spat", "spin", "spot"}, got)
}

// TestOneLetterApart covers the predicate contract.
func TestOneLetterApart(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"spin", "spit", true},
		{"spin", "spot", false},
		{"spin", "spin", false},
		{"Spin", "spin", true},
		{"über", "aber", true},
		{"a", "b", true},
	}
	for _, tc := range tests {
		got, err := core.OneLetterApart(tc.a, tc.b)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s vs %s", tc.a, tc.b)
	}

	_, err := core.OneLetterApart("spin", "latch")
	if !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

// TestDifferences reports every differing rune index.
func TestDifferences(t *testing.T) {
	d, err := core.Differences("spin", "spot")
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, d)

	d, err = core.Differences("spin", "spin")
	require.NoError(t, err)
	require.Empty(t, d)

	_, err = core.Differences("spin", "spins")
	require.ErrorIs(t, err, core.ErrLengthMismatch)
}
