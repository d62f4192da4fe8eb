// Package bfs provides the breadth-first distance build that sizes every
// word ladder: the distance of each word from the start, and the length of
// the shortest chain to the target.
//
// What
//
//   - Explore words in non-decreasing distance (one-letter steps) from a start word.
//   - Stop as soon as the target word is dequeued.
//   - Return a Result containing:
//   - Order: dequeue sequence
//   - Depth: map from word → distance from start (dequeued words only)
//   - Parent: map from word → its predecessor in the BFS tree
//   - LadderLength: number of words in the shortest chain, or 0
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a word is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The exact shortest ladder length bounds the enumeration in package dfs.
//   - Result.DistanceToEnd re-bases Depth onto the target, giving dfs a
//     cheap admissible prune: a word may only be stepped into when its
//     distance-to-end strictly decreases.
//
// Determinism
//
//	Because core.Graph.NeighborIDs returns words sorted lexicographically and
//	BFS enqueues neighbors in that order, the visit sequence is fully
//	reproducible. Distances themselves do not depend on visitation order:
//	each word is finalized the first time it is enqueued.
//
// Complexity (V = |words|, E = |one-letter pairs|)
//
//   - Time:   O(V + E)   (each word and pair seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Distances(g, "spin", "spot")
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound,
//		// ErrOptionViolation, ErrNeighbors, ctx.Err() or hook errors
//	}
//	if !res.Reached() {
//		// no ladder: a normal outcome
//	}
//	toEnd, _ := res.DistanceToEnd()
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn):           hook before a word is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a word.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrStartVertexNotFound   if the start word is not in the graph.
//   - ErrTargetVertexNotFound  if the end word is not in the graph.
//   - ErrOptionViolation       if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors             if core.NeighborIDs fails for any word.
//   - ErrTargetNotReached      from Result.DistanceToEnd when there is no ladder.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
