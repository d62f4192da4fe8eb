// File: graph.go
// Role: read APIs over Graph (HasVertex, Vertices, NeighborIDs, Adjacent).
// Determinism:
//   - Vertices() and NeighborIDs() return words sorted lex asc.
// Concurrency:
//   - Only the neighbor memo is written after construction; it is guarded by muNbr.

package core

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// HasVertex reports whether word is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(word string) bool {
	_, ok := g.index[word]

	return ok
}

// Vertices returns a copy of all words in g, sorted ascending.
// Complexity: O(N).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// VertexCount returns the number of words in g.
func (g *Graph) VertexCount() int { return len(g.words) }

// WordLength returns the shared rune length of g's words (0 when g is empty).
func (g *Graph) WordLength() int { return g.length }

// NeighborIDs returns every word of g that is one letter apart from word,
// sorted ascending. The returned slice is shared with the memo and must be
// treated as read-only.
//
// Implementation:
//   - Stage 1: Validate word is non-empty and a vertex of g.
//   - Stage 2: Return the memoized list if present (read lock).
//   - Stage 3: Union the word's wildcard buckets, dropping word itself.
//     Two distinct words share at most one bucket, so the union has no
//     duplicates.
//   - Stage 4: Sort, memoize under the write lock and return.
//
// Errors:
//   - ErrEmptyVertexID: if word == "".
//   - ErrVertexNotFound: if word is not in g.
//
// Complexity:
//   - First call: O(L·b + d·log d), where b is the mean bucket size and d the degree.
//   - Later calls: O(1).
func (g *Graph) NeighborIDs(word string) ([]string, error) {
	if word == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(word) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, word)
	}

	g.muNbr.RLock()
	nbrs, ok := g.neighbors[word]
	g.muNbr.RUnlock()
	if ok {
		return nbrs, nil
	}

	nbrs = make([]string, 0)
	for _, key := range wildcards(word) {
		for _, w := range g.buckets[key] {
			if w != word {
				nbrs = append(nbrs, w)
			}
		}
	}
	sort.Strings(nbrs)

	g.muNbr.Lock()
	g.neighbors[word] = nbrs
	g.muNbr.Unlock()

	return nbrs, nil
}

// Adjacent reports whether a and b are both vertices of g and one letter apart.
// Words of a length other than g's return ErrLengthMismatch.
func (g *Graph) Adjacent(a, b string) (bool, error) {
	for _, w := range [2]string{a, b} {
		if w == "" {
			return false, ErrEmptyVertexID
		}
		if n := utf8.RuneCountInString(w); n != g.length {
			return false, fmt.Errorf("%w: %q has %d letters, graph has %d", ErrLengthMismatch, w, n, g.length)
		}
	}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false, nil
	}

	return OneLetterApart(a, b)
}
