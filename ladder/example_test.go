package ladder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
)

// ExampleSolve finds the spin → spot ladder.
func ExampleSolve() {
	sol, err := ladder.Solve([]string{"spin", "spit", "spat", "spot", "span"}, "spin", "spot")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Steps(), sol.Shortest())
	// Output:
	// 2 [spin spit spot]
}

// ExampleError shows matching an input failure by kind.
func ExampleError() {
	_, err := ladder.Solve([]string{"spin", "spit", "spat", "spot", "span"}, "spiv", "spot")
	var le *ladder.Error
	if errors.As(err, &le) {
		fmt.Println(le.Kind, le.Word)
	}
	// Output:
	// WordNotInDictionary spiv
}
