package ladder

// Stats summarizes the work a solve did.
type Stats struct {
	ValidWords int // size of the Valid Word Set
	Visited    int // words dequeued by the distance build
	Expanded   int // words pushed by the enumeration
	Pruned     int // neighbors skipped by the distance-to-end prune
}

// Solution is the immutable outcome of a successful solve. "No ladder" is a
// Solution with no paths, not an error.
type Solution struct {
	start, end   string
	valid        []string
	fingerprint  string
	depth        map[string]int
	ladderLength int
	paths        [][]string
	truncated    bool
	stats        Stats
}

// Start returns the start word.
func (s *Solution) Start() string { return s.start }

// End returns the end word.
func (s *Solution) End() string { return s.end }

// Found reports whether at least one ladder exists.
func (s *Solution) Found() bool { return len(s.paths) > 0 }

// Solutions returns a copy of every shortest ladder, sorted
// lexicographically word by word. Empty when there is none.
func (s *Solution) Solutions() [][]string {
	out := make([][]string, len(s.paths))
	for i, p := range s.paths {
		out[i] = append([]string(nil), p...)
	}
	return out
}

// Shortest returns one shortest ladder: the lexicographically first. Ties
// carry no other meaning. It returns an empty, non-nil path when no ladder
// exists.
func (s *Solution) Shortest() []string {
	if len(s.paths) == 0 {
		return []string{}
	}
	return append([]string(nil), s.paths[0]...)
}

// Steps returns len(Shortest())-1, or 0 when no ladder exists.
func (s *Solution) Steps() int {
	if len(s.paths) == 0 {
		return 0
	}
	return len(s.paths[0]) - 1
}

// LadderLength returns the number of words in a shortest ladder, 0 if none.
func (s *Solution) LadderLength() int { return s.ladderLength }

// Truncated reports whether MaxSolutions cut the enumeration short.
func (s *Solution) Truncated() bool { return s.truncated }

// DistanceFromStart returns the BFS distance of word, if the distance build
// dequeued it.
func (s *Solution) DistanceFromStart(word string) (int, bool) {
	d, ok := s.depth[word]
	return d, ok
}

// ValidWords returns a copy of the Valid Word Set, sorted.
func (s *Solution) ValidWords() []string {
	return append([]string(nil), s.valid...)
}

// Fingerprint identifies the Valid Word Set (see dictionary.Fingerprint).
func (s *Solution) Fingerprint() string { return s.fingerprint }

// Stats returns work counters.
func (s *Solution) Stats() Stats { return s.stats }
