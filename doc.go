// Package wordladder finds the shortest chains of words between two words,
// changing exactly one letter per step, using only words from a dictionary.
//
// 🚀 What is wordladder?
//
//	An in-memory word-graph toolkit plus a CLI:
//		• Implicit word graph: neighbours found through wildcard buckets, never a full edge list
//		• Distance layers: BFS from the start word, stopped as soon as the end word is reached
//		• All shortest ladders: budget-pruned DFS, recursive or explicit-stack
//		• Dictionaries: plain text, gzip, zstd, SQLite tables and doublestar globs
//
// ✨ Why wordladder?
//
//   - Deterministic – neighbours are sorted, ladders come out in lexicographic order
//   - Cancellable – every search phase honours context.Context
//   - Typed failures – every input error carries a ladder.Kind
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — Graph over one word length, one-letter adjacency
//	bfs/         — distance-from-start layers and ladder length
//	dfs/         — enumeration of every shortest ladder under a step budget
//	dictionary/  — loading, filtering and fingerprinting word lists
//	ladder/      — Solve / SolveFile, input validation and error kinds
//	output/      — solution files and terminal rendering
//	config/      — YAML defaults for the CLI
//	cmd/wordladder — the command-line front end
//
// Quick ASCII example:
//
//	    spin ── spit ── spot
//	      │      │
//	    span ── spat
//
//	spin → spit → spot is the only 2-step ladder from spin to spot.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
