// Package dfs defines types and options for the depth-bounded, backtracking
// enumeration of every shortest word ladder, including cancellation,
// pre-order and solution hooks, solution limits and the recursion limit.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// DefaultRecursionLimit is the largest budget walked with native recursion.
// Larger budgets switch to an explicit frame stack with identical order.
const DefaultRecursionLimit = 1024

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllShortest.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start word does not exist in
	// the graph or has no recorded distance-to-end.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the end word does not exist in
	// the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")

	// ErrOptionViolation is returned for a negative budget or an invalid Option.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// errLimit stops the walk once MaxSolutions paths are recorded.
var errLimit = errors.New("dfs: solution limit reached")

// Option configures optional behavior of the enumeration.
// Use with AllShortest(g, start, end, toEnd, budget, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the enumeration.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per entered word.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a word is pushed onto the path
	// (pre-order) with its position in the path.
	// Returning an error aborts the enumeration with that error.
	OnVisit func(word string, depth int) error

	// OnSolution, if non-nil, receives a private copy of every completed
	// path. Returning an error aborts the enumeration with that error.
	OnSolution func(path []string) error

	// MaxSolutions, if > 0, stops the enumeration after that many paths and
	// marks the result Truncated. Default is 0 (no limit).
	MaxSolutions int

	// RecursionLimit bounds the budget walked recursively; above it the
	// explicit-stack walker is used. Default is DefaultRecursionLimit.
	RecursionLimit int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No solution limit
//   - RecursionLimit = DefaultRecursionLimit
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnSolution:     nil,
		MaxSolutions:   0,
		RecursionLimit: DefaultRecursionLimit,
	}
}

// WithContext returns an Option that sets the Context for the enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnSolution returns an Option that installs fn as the solution hook.
func WithOnSolution(fn func(path []string) error) Option {
	return func(o *DFSOptions) {
		o.OnSolution = fn
	}
}

// WithMaxSolutions returns an Option that stops after n solutions.
// n == 0 disables the limit; n < 0 is an ErrOptionViolation.
func WithMaxSolutions(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSolutions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithRecursionLimit returns an Option that sets the recursion limit.
// limit == 0 forces the explicit-stack walker; limit < 0 is an ErrOptionViolation.
func WithRecursionLimit(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: RecursionLimit cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.RecursionLimit = limit
	}
}

// Result captures the outcome of an enumeration.
type Result struct {
	// Paths holds every completed start→end path, in discovery order.
	Paths [][]string

	// Expanded counts words pushed onto the in-progress path.
	Expanded int

	// Pruned counts neighbors skipped because their distance-to-end did not
	// strictly decrease.
	Pruned int

	// Truncated reports that MaxSolutions stopped the walk early.
	Truncated bool
}
