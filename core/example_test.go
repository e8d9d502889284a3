package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/core"
)

// ExampleNewGraph builds a 4-cycle and inspects its adjacency.
func ExampleNewGraph() {
	g, err := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", g.Order(), "size:", g.Size())
	for v := 0; v < g.Order(); v++ {
		fmt.Println(v, g.Neighbors(v))
	}

	// Output:
	// order: 4 size: 4
	// 0 [1 3]
	// 1 [0 2]
	// 2 [1 3]
	// 3 [2 0]
}
