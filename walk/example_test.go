// Package walk_test demonstrates the walk-count embedding.
package walk_test

import (
	"fmt"

	"github.com/katalvlaran/graphprint/matrix"
	"github.com/katalvlaran/graphprint/walk"
)

// ExampleProfiles prints the closed-walk profile of every vertex of a triangle
// with a pendant vertex attached.
func ExampleProfiles() {
	paw, _ := matrix.NewAdjacency(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}})
	profiles, _ := walk.Profiles(paw)
	for v, p := range profiles {
		fmt.Println(v, p)
	}
	// Output:
	// 0 [2 2 7]
	// 1 [2 2 7]
	// 2 [3 2 11]
	// 3 [1 0 3]
}

// ExampleSafeWidth shows where the automatic width switches to 64 bits.
func ExampleSafeWidth() {
	fmt.Println(walk.SafeWidth(10), walk.SafeWidth(11))
	// Output:
	// 32 64
}
