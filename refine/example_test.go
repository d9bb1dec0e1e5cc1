// Package refine_test demonstrates color refinement on small graphs.
package refine_test

import (
	"fmt"

	"github.com/katalvlaran/graphprint/builder"
	"github.com/katalvlaran/graphprint/refine"
)

// ExampleRefine shows the refinement trace on a star with four leaves.
func ExampleRefine() {
	star, _ := builder.Build(nil, builder.Star(5))
	res := refine.Refine(star)
	fmt.Println("rounds:", res.Rounds)
	fmt.Println("history:", res.History)
	fmt.Println("classes:", len(refine.Partition(res)))
	// Output:
	// rounds: 2
	// history: [1 2]
	// classes: 2
}
