// Package ladder solves word ladders: given a dictionary, a start word and
// an end word, it finds the shortest chain in which each step changes
// exactly one letter, and every chain of that length.
//
// Usage:
//
//	sol, err := ladder.Solve(words, "spin", "spot")
//	var le *ladder.Error
//	switch {
//	case errors.As(err, &le):
//		// le.Kind is one of the six input failures
//	case err != nil:
//		// cancellation or an invalid Option
//	case !sol.Found():
//		// no ladder: a normal outcome
//	default:
//		fmt.Println(sol.Steps(), sol.Shortest())
//	}
//
// Pipeline:
//
//	Validate → dictionary.Prepare → core.NewGraph → bfs.Distances → dfs.AllShortest
//
// Each stage runs once, synchronously, and the returned Solution is
// immutable. Two solves over the same inputs return the same Solutions in
// the same (lexicographic) order.
//
// Errors:
//
//	KindDictionaryFileNotFound  ErrDictionaryFileNotFound  SolveFile / LoadDictionary only
//	KindInvalidWord             ErrInvalidWord             empty start or end
//	KindWordsAreSame            ErrWordsAreSame            start == end
//	KindWordLengthMismatch      ErrWordLengthMismatch      len(start) != len(end)
//	KindNoValidWords            ErrNoValidWords            nothing survives Prepare
//	KindWordNotInDictionary     ErrWordNotInDictionary     start or end not prepared
package ladder
