// Package core provides the immutable word graph that every ladder search
// runs over, together with the one-letter adjacency predicate.
//
// The Graph G = (V,E) is implicit:
//
//   - V is a Valid Word Set: unique words of one common length.
//   - E joins two words iff they differ in exactly one position
//     (OneLetterApart). Edges are never stored explicitly.
//
// Why an implicit graph?
//
//   - A dictionary of N words has up to N² candidate pairs; scanning them all
//     on every expansion is what makes naive ladder solvers slow.
//   - core.Graph instead buckets every word under its L wildcard patterns
//     ("sp_n", "s_in", …). Two distinct words share a bucket iff they are one
//     letter apart, so NeighborIDs(w) is the union of w's L buckets.
//
// Determinism:
//
//	Vertices() and NeighborIDs() return words sorted lexicographically (byte
//	order), so BFS and DFS built on top of Graph visit words in a fully
//	reproducible order.
//
// Concurrency:
//
//	The vertex set and bucket index are read-only after NewGraph. The
//	neighbor memo is guarded by a sync.RWMutex, so a Graph may be shared by
//	concurrent readers.
//
// Core API:
//
//	NewGraph(words []string) (*Graph, error)       // O(N·L)
//	HasVertex(word string) bool                    // O(1)
//	Vertices() []string                            // O(N)
//	VertexCount() int                              // O(1)
//	WordLength() int                               // O(1)
//	NeighborIDs(word string) ([]string, error)     // O(L·b + d·log d), memoized
//	Adjacent(a, b string) (bool, error)            // O(L)
//
//	OneLetterApart(a, b string) (bool, error)      // O(L)
//	Differences(a, b string) ([]int, error)        // O(L)
//
// Errors:
//
//	ErrEmptyVertexID     - word is the empty string.
//	ErrVertexNotFound    - word is not a vertex of the graph.
//	ErrLengthMismatch    - two words (or a word and the graph) differ in length.
package core
