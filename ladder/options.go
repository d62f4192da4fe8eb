package ladder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/dictionary"
)

// Option configures Solve and SolveFile.
type Option func(*Options)

// Options holds the tunables of a solve.
type Options struct {
	// Ctx cancels the distance build and the enumeration.
	Ctx context.Context

	// MaxSolutions, if > 0, stops the enumeration after that many ladders.
	MaxSolutions int

	// MaxSteps, if > 0, treats ladders longer than MaxSteps steps as absent.
	MaxSteps int

	// RecursionLimit bounds the ladder length walked recursively.
	RecursionLimit int

	// OnSolution, if non-nil, sees every ladder as it is found, in
	// discovery order. Returning an error aborts the solve.
	OnSolution func(path []string) error

	// Load configures SolveFile's dictionary loader.
	Load []dictionary.LoadOption

	err error
}

// DefaultOptions returns background context, no limits, and
// dfs.DefaultRecursionLimit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		RecursionLimit: dfs.DefaultRecursionLimit,
	}
}

// WithContext sets the context checked by both search phases.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutions bounds the number of ladders collected (0 = no limit).
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSolutions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithMaxSteps bounds the ladder length in steps (0 = no limit).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithRecursionLimit sets the ladder length above which the enumeration
// uses an explicit stack instead of recursion.
func WithRecursionLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: RecursionLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.RecursionLimit = n
	}
}

// WithOnSolution installs a hook that sees every ladder as it is found.
func WithOnSolution(fn func(path []string) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// WithLoadOptions forwards options to the dictionary loader used by SolveFile.
func WithLoadOptions(opts ...dictionary.LoadOption) Option {
	return func(o *Options) {
		o.Load = append(o.Load, opts...)
	}
}
