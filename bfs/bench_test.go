package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// BenchmarkDistances_Grid runs BFS corner to corner over {a..h}^4,
// the worst case for early termination: the target sits in the last layer.
func BenchmarkDistances_Grid(b *testing.B) {
	letters := "abcdefgh"
	words := make([]string, 0, 4096)
	for _, c1 := range letters {
		for _, c2 := range letters {
			for _, c3 := range letters {
				for _, c4 := range letters {
					words = append(words, string([]rune{c1, c2, c3, c4}))
				}
			}
		}
	}
	g, err := core.NewGraph(words)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, "aaaa", "hhhh")
	}
}
