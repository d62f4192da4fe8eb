package ladder

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/dictionary"
)

// Solve finds every shortest ladder from start to end through words.
//
// Stages, each consuming the previous one's output:
//
//  1. Validate(start, end)
//  2. dictionary.Prepare(words, len(start)), then the dictionary checks
//  3. bfs.Distances: distance-from-start and the ladder length
//  4. dfs.AllShortest over the re-based distance-to-end map
//
// Input failures return an *Error before any search runs. Cancellation
// returns the context's error. An unreachable end word is a successful
// Solution with no ladders.
func Solve(words []string, start, end string, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return solve(o, words, start, end)
}

// SolveFile loads the dictionary at path and solves. A path containing
// glob metacharacters that names no existing file is expanded with
// dictionary.LoadGlob. A missing
// source fails with KindDictionaryFileNotFound before the words are
// validated.
func SolveFile(path, start, end string, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	words, err := LoadDictionary(path, o.Load...)
	if err != nil {
		return nil, err
	}
	return solve(o, words, start, end)
}

// LoadDictionary reads a dictionary file (or glob of files), mapping a
// missing source to KindDictionaryFileNotFound. A file that exists under
// path is read as is even when its name contains glob metacharacters.
func LoadDictionary(path string, opts ...dictionary.LoadOption) ([]string, error) {
	var (
		words []string
		err   error
	)
	if isPattern(path) {
		words, err = dictionary.LoadGlob(path, opts...)
	} else {
		words, err = dictionary.Load(path, opts...)
	}
	if errors.Is(err, dictionary.ErrFileNotFound) {
		e := newError(KindDictionaryFileNotFound, "", "dictionary file %q not found", path)
		e.Err = err
		return nil, e
	}
	if err != nil {
		return nil, fmt.Errorf("ladder: load dictionary: %w", err)
	}
	return words, nil
}

// isPattern reports whether path should be expanded as a glob: it holds
// glob metacharacters and no regular file exists under that exact name.
func isPattern(path string) bool {
	if !strings.ContainsAny(path, "*?[{") {
		return false
	}
	info, err := os.Stat(path)
	return err != nil || info.IsDir()
}

func solve(o Options, words []string, start, end string) (*Solution, error) {
	if err := Validate(start, end); err != nil {
		return nil, err
	}
	valid := dictionary.Prepare(words, utf8.RuneCountInString(start))
	if err := checkDictionary(valid, start, end); err != nil {
		return nil, err
	}

	g, err := core.NewGraph(valid)
	if err != nil {
		return nil, fmt.Errorf("ladder: build graph: %w", err)
	}

	dist, err := bfs.Distances(g, start, end,
		bfs.WithContext(o.Ctx),
		bfs.WithMaxDepth(o.MaxSteps),
	)
	if err != nil {
		return nil, fmt.Errorf("ladder: distance build: %w", err)
	}

	sol := &Solution{
		start:        start,
		end:          end,
		valid:        valid,
		fingerprint:  dictionary.Fingerprint(valid),
		depth:        dist.Depth,
		ladderLength: dist.LadderLength,
		paths:        [][]string{},
		stats: Stats{
			ValidWords: len(valid),
			Visited:    len(dist.Order),
		},
	}
	if !dist.Reached() {
		return sol, nil
	}

	toEnd, err := dist.DistanceToEnd()
	if err != nil {
		return nil, fmt.Errorf("ladder: %w", err)
	}
	res, err := dfs.AllShortest(g, start, end, toEnd, dist.LadderLength,
		dfs.WithContext(o.Ctx),
		dfs.WithMaxSolutions(o.MaxSolutions),
		dfs.WithRecursionLimit(o.RecursionLimit),
		dfs.WithOnSolution(o.OnSolution),
	)
	if err != nil {
		return nil, fmt.Errorf("ladder: enumerate: %w", err)
	}

	slices.SortFunc(res.Paths, dfs.Compare)
	sol.paths = res.Paths
	sol.truncated = res.Truncated
	sol.stats.Expanded = res.Expanded
	sol.stats.Pruned = res.Pruned

	return sol, nil
}
