// Package dfs enumerates every shortest word ladder on a core.Graph by
// depth-first backtracking, bounded by the ladder length that package bfs
// computed and pruned by the re-based distance-to-end map.
//
// Key features:
//   - AllShortest(g, start, end, toEnd, budget, opts...): collect every path
//   - Hooks: OnVisit (pre-order) & OnSolution with error aborts
//   - Limits: MaxSolutions, RecursionLimit (explicit stack beyond it)
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(P·L·d) in the worst case, where P is the number of shortest
//     paths; exponential in the number of equally short paths, which is
//     inherent to enumerating them all.
//   - Memory: O(L) for the in-progress path and on-path set, plus the output.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing or has no distance-to-end.
//   - ErrTargetVertexNotFound   if end is missing.
//   - ErrOptionViolation        for a negative budget or invalid option.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnSolution.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// dfsWalker encapsulates state during the enumeration.
// path and onPath are scratch state: every push is undone on the way out,
// so both are empty again once the walk unwinds.
type dfsWalker struct {
	graph  *core.Graph    // underlying graph
	end    string         // target word
	toEnd  map[string]int // re-based distance to the target
	opts   DFSOptions     // enumeration options
	res    *Result        // result collector
	path   []string       // in-progress path
	onPath map[string]bool
}

// AllShortest collects every path from start to end that uses exactly
// budget words, given toEnd from bfs.Result.DistanceToEnd and budget equal
// to the ladder length.
//
// A word w at remaining budget b is expanded only when b > 0 and
// toEnd[w] < b. A neighbor n is entered only when it has a recorded
// distance, is not already on the path, and toEnd[n] < toEnd[w]. The strict
// decrease keeps every entered word on the BFS layer matching its position,
// so no completed path is longer than the ladder and none is missed.
//
// budget == 0 (no ladder) returns an empty Result.
func AllShortest(g *core.Graph, start, end string, toEnd map[string]int, budget int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: budget cannot be negative (%d)", ErrOptionViolation, budget)
	}

	// 3. Verify endpoints
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, end)
	}

	res := &Result{Paths: make([][]string, 0)}
	if budget == 0 {
		return res, nil
	}
	if _, ok := toEnd[start]; !ok {
		return nil, fmt.Errorf("%w: %q has no distance-to-end", ErrStartVertexNotFound, start)
	}

	// 4. Walk
	w := &dfsWalker{
		graph:  g,
		end:    end,
		toEnd:  toEnd,
		opts:   dopts,
		res:    res,
		path:   make([]string, 0, budget),
		onPath: make(map[string]bool, budget),
	}
	var err error
	if budget > dopts.RecursionLimit {
		err = w.iterate(start, budget)
	} else {
		err = w.traverse(start, budget)
	}
	if errors.Is(err, errLimit) {
		res.Truncated = true
		err = nil
	}
	if err != nil {
		return res, err
	}

	return res, nil
}

// cancelled reports ctx.Err() once the context is done.
func (w *dfsWalker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// push records word on the in-progress path.
func (w *dfsWalker) push(word string) {
	w.path = append(w.path, word)
	w.onPath[word] = true
	w.res.Expanded++
}

// arrive fires OnVisit for the word just pushed and records a solution
// when it is the target.
func (w *dfsWalker) arrive(word string) error {
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(word, len(w.path)-1); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", word, err)
		}
	}
	if word == w.end {
		return w.record()
	}
	return nil
}

// pop undoes the last push.
func (w *dfsWalker) pop() {
	last := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, last)
}

// record stores a copy of the current path.
func (w *dfsWalker) record() error {
	sol := make([]string, len(w.path))
	copy(sol, w.path)
	if w.opts.OnSolution != nil {
		cp := make([]string, len(sol))
		copy(cp, sol)
		if err := w.opts.OnSolution(cp); err != nil {
			return fmt.Errorf("dfs: OnSolution hook: %w", err)
		}
	}
	w.res.Paths = append(w.res.Paths, sol)
	if w.opts.MaxSolutions > 0 && len(w.res.Paths) >= w.opts.MaxSolutions {
		return errLimit
	}
	return nil
}

// candidates returns the neighbors of word that may be entered next, or nil
// when word must not be expanded.
func (w *dfsWalker) candidates(word string, budget int) ([]string, error) {
	if word == w.end {
		return nil, nil
	}
	d := w.toEnd[word]
	if budget <= 0 || d >= budget {
		return nil, nil
	}
	nbrs, err := w.graph.NeighborIDs(word)
	if err != nil {
		return nil, fmt.Errorf("dfs: NeighborIDs(%q): %w", word, err)
	}

	out := make([]string, 0, len(nbrs))
	for _, nb := range nbrs {
		nd, ok := w.toEnd[nb]
		if !ok || w.onPath[nb] {
			continue
		}
		if nd >= d {
			w.res.Pruned++
			continue
		}
		out = append(out, nb)
	}
	return out, nil
}

// traverse enters word with the given remaining budget and recurses into
// every candidate neighbor. The path is restored before returning.
func (w *dfsWalker) traverse(word string, budget int) error {
	if err := w.cancelled(); err != nil {
		return err
	}
	w.push(word)
	defer w.pop()
	if err := w.arrive(word); err != nil {
		return err
	}

	next, err := w.candidates(word, budget)
	if err != nil {
		return err
	}
	for _, nb := range next {
		if err = w.traverse(nb, budget-1); err != nil {
			return err
		}
	}

	return nil
}

// frame is one level of the explicit-stack walk.
type frame struct {
	budget int
	next   []string // candidate neighbors
	i      int      // index of the next candidate
}

// iterate is traverse with an explicit frame stack: same visiting order,
// same pruning, no call-stack growth with the budget.
func (w *dfsWalker) iterate(start string, budget int) error {
	stack := make([]frame, 0, budget)
	// an early return leaves words pushed; unwind them as traverse does
	defer func() {
		for len(w.path) > 0 {
			w.pop()
		}
	}()

	enter := func(word string, b int) error {
		if err := w.cancelled(); err != nil {
			return err
		}
		w.push(word)
		stack = append(stack, frame{budget: b})
		if err := w.arrive(word); err != nil {
			return err
		}
		next, err := w.candidates(word, b)
		if err != nil {
			return err
		}
		stack[len(stack)-1].next = next
		return nil
	}

	if err := enter(start, budget); err != nil {
		return err
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i < len(top.next) {
			nb := top.next[top.i]
			top.i++
			if err := enter(nb, top.budget-1); err != nil {
				return err
			}
			continue
		}
		stack = stack[:len(stack)-1]
		w.pop()
	}

	return nil
}
