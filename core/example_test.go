package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// ExampleGraph_NeighborIDs lists the one-letter neighbours of a word.
func ExampleGraph_NeighborIDs() {
	g, err := core.NewGraph([]string{"spin", "spit", "spat", "spot", "span"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nbrs, _ := g.NeighborIDs("spit")
	fmt.Println(nbrs)
	// Output:
	// [spat spin spot]
}

// ExampleOneLetterApart shows the adjacency predicate.
func ExampleOneLetterApart() {
	ok, _ := core.OneLetterApart("cold", "cord")
	fmt.Println(ok)
	ok, _ = core.OneLetterApart("cold", "card")
	fmt.Println(ok)
	// Output:
	// true
	// false
}
