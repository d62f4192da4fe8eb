// Package bfs provides tunable options, error definitions and the result
// type for the breadth-first distance build over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start word is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetVertexNotFound is returned when the end word is absent.
	ErrTargetVertexNotFound = errors.New("bfs: target vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrTargetNotReached is returned by Result methods that need a ladder
	// when the traversal never dequeued the target.
	ErrTargetNotReached = errors.New("bfs: target not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a word is enqueued, before visiting.
	// Receives the word and its distance from the start.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called immediately before visiting a word.
	OnDequeue func(word string, depth int)

	// OnVisit is called when visiting a word. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(word string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth: words further than d
// steps from the start are never enqueued, so a target beyond d is
// reported as unreachable.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a distance build:
//   - Order: words dequeued, in visit sequence.
//   - Depth: distance-from-start of every dequeued word.
//   - Parent: BFS-tree predecessor of every enqueued word except the start.
//   - Start, Target: the endpoints the traversal ran between.
//   - LadderLength: words in the shortest start→target chain; 0 when the
//     target was not reached.
type Result struct {
	Order        []string
	Depth        map[string]int
	Parent       map[string]string
	Start        string
	Target       string
	LadderLength int
}

// Reached reports whether the target was dequeued.
func (r *Result) Reached() bool { return r.LadderLength > 0 }

// PathTo reconstructs one shortest path from the start word to dest along
// the BFS tree. Returns an error if dest was not dequeued.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// DistanceToEnd re-bases Depth onto the target:
//
//	toEnd[w] = (LadderLength − 1) − Depth[w]
//
// for every word in Depth. The start maps to LadderLength−1 and the target
// to 0. Words dequeued at the target's own depth also map to 0.
// Returns ErrTargetNotReached when there is no ladder.
func (r *Result) DistanceToEnd() (map[string]int, error) {
	if !r.Reached() {
		return nil, fmt.Errorf("%w: %q from %q", ErrTargetNotReached, r.Target, r.Start)
	}
	toEnd := make(map[string]int, len(r.Depth))
	for w, d := range r.Depth {
		toEnd[w] = r.LadderLength - 1 - d
	}

	return toEnd, nil
}
