// Package bfs builds breadth-first distances over a core.Graph from a start
// word towards a target word, returning distance-from-start, parent links,
// visit order and the ladder length.
//
// BFS explores words in increasing distance from the start and stops the
// moment the target is dequeued, with optional hooks, depth limiting and
// cancellation.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a word with its BFS depth and its parent.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	target  string
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Distances runs breadth-first search on g from start until end is dequeued
// or the reachable component is exhausted, applying any number of
// functional Options.
//
// A word is marked visited the first time it is enqueued, which finalizes
// its distance; Depth records it when the word is dequeued. Reaching the
// target sets LadderLength = depth(target) + 1. An exhausted queue leaves
// LadderLength == 0, which is a normal result, not an error.
//
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrTargetVertexNotFound for
// invalid input, ErrOptionViolation for bad options, ErrNeighbors for graph
// failures, ctx.Err() on cancellation, or any user-supplied hook error.
func Distances(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, end)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		target:  end,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Start:  start,
			Target: end,
		},
	}

	// Seed queue with start word (no parent)
	w.enqueue(start, 0, "")
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until the target is dequeued, the queue is
// empty, a hook fails or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.id == w.target {
			w.res.LadderLength = item.depth + 1
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the word's distance and order, then calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Depth[item.id] = item.depth
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies MaxDepth, and enqueues each
// unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}
