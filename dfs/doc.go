// Package dfs implements the depth-first, backtracking enumeration of every
// shortest word ladder on a core.Graph.
//
// What:
//
//   - AllShortest walks from the start word, pushing each word onto an
//     in-progress path and popping it on the way back (backtracking), and
//     records a copy of the path whenever the end word is reached.
//   - The walk is bounded by the ladder length from package bfs and pruned
//     by the re-based distance-to-end map (bfs.Result.DistanceToEnd):
//   - a word is expanded only while its distance-to-end is below the
//     remaining budget;
//   - a neighbor is entered only if its distance-to-end strictly
//     decreases, it has a recorded distance, and it is not on the path.
//   - Two walkers share the same order and pruning: native recursion for
//     budgets up to RecursionLimit, and an explicit frame stack beyond it.
//
// Why:
//   - BFS yields one distance per word, which is enough to size the ladder
//     but not to list every way of climbing it.
//   - The strict decrease confines the walk to the layered BFS DAG, so every
//     recorded path has exactly budget words and no shortest path is missed.
//
// Determinism:
//
//	core.Graph.NeighborIDs is sorted and every path has the same length, so
//	paths are discovered in lexicographic order.
//
// Key Types:
//
//   - Option / DFSOptions: Context, OnVisit, OnSolution, MaxSolutions, RecursionLimit
//   - Result: Paths, Expanded, Pruned, Truncated
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start word missing or without a distance
//   - ErrTargetVertexNotFound end word missing
//   - ErrOptionViolation      negative budget, MaxSolutions or RecursionLimit
//   - context.Canceled        walk cancelled via context
//   - hook errors             propagated from OnVisit or OnSolution
//
// Functions:
//
//   - AllShortest(g, start, end, toEnd, budget, opts...) (*Result, error)
//   - Compare(a, b []string) int
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnSolution(),
//     WithMaxSolutions(), WithRecursionLimit()
package dfs
