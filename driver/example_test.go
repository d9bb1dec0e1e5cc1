// Package driver_test demonstrates comparing both embeddings over a stream.
package driver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphprint/driver"
	"github.com/katalvlaran/graphprint/embedding"
	"github.com/katalvlaran/graphprint/source"
)

// ExampleRunN compares the default embeddings on all graphs with 6 vertices.
func ExampleRunN() {
	res, err := driver.RunN(context.Background(), source.Exhaustive{}, 6, embedding.Defaults())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("graphs:", res.Graphs)
	wl, _ := res.Outcome(embedding.WL)
	fmt.Println("wl groups > 0:", len(wl.Groups) > 0)
	// Output:
	// graphs: 156
	// wl groups > 0: true
}
