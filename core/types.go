// SPDX-License-Identifier: MIT
// Package core defines the Graph type and sentinel errors for word graphs.
//
// This file declares Graph, the sentinel errors, and the NewGraph
// constructor.
package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided word is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a word outside the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLengthMismatch indicates two words of different lengths were compared,
	// or a word of the wrong length was offered to a Graph.
	ErrLengthMismatch = errors.New("core: word length mismatch")
)

// Graph is an immutable, implicit one-letter-apart graph over a set of
// equal-length words.
//
// words holds the vertex set sorted ascending; index maps a word to its
// position in words; buckets maps a wildcard key to the sorted words that
// match it. neighbors memoizes NeighborIDs and is the only mutable state.
type Graph struct {
	muNbr sync.RWMutex // guards neighbors

	length  int                 // rune length shared by every vertex
	words   []string            // sorted, unique
	index   map[string]int      // word → position in words
	buckets map[string][]string // wildcard key → sorted words

	neighbors map[string][]string // word → sorted adjacent words
}

// NewGraph builds a Graph from words. Duplicates collapse to one vertex.
// Every word must be non-empty and share one rune length; otherwise
// ErrEmptyVertexID or ErrLengthMismatch is returned. An empty input yields
// an empty Graph with WordLength() == 0.
// Complexity: O(N·L + N·log N).
func NewGraph(words []string) (*Graph, error) {
	g := &Graph{
		index:     make(map[string]int, len(words)),
		buckets:   make(map[string][]string),
		neighbors: make(map[string][]string),
	}

	uniq := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			return nil, ErrEmptyVertexID
		}
		n := utf8.RuneCountInString(w)
		if g.length == 0 {
			g.length = n
		} else if n != g.length {
			return nil, fmt.Errorf("%w: %q has %d letters, graph has %d", ErrLengthMismatch, w, n, g.length)
		}
		if _, seen := g.index[w]; seen {
			continue
		}
		g.index[w] = -1
		uniq = append(uniq, w)
	}
	sort.Strings(uniq)
	g.words = uniq

	for i, w := range g.words {
		g.index[w] = i
		for _, key := range wildcards(w) {
			// words are visited in sorted order, so every bucket stays sorted
			g.buckets[key] = append(g.buckets[key], w)
		}
	}

	return g, nil
}

// wildcards returns the L bucket keys of w: w with one rune blanked out.
// The blank is a NUL byte, which never occurs inside a dictionary word, so
// keys of different positions cannot collide.
func wildcards(w string) []string {
	runes := []rune(w)
	keys := make([]string, len(runes))
	for i := range runes {
		keys[i] = string(runes[:i]) + "\x00" + string(runes[i+1:])
	}

	return keys
}
