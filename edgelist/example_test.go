package edgelist_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlabel/edgelist"
)

// ExampleReadGraph parses a triangle with a stray trailing vertex id.
func ExampleReadGraph() {
	g, err := edgelist.ReadGraph(strings.NewReader("0 1\n1 2\n2 0\n5"),
		edgelist.WithOnTruncated(func(v int) { fmt.Println("dropped", v) }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order", g.Order(), "size", g.Size())
	// Output:
	// dropped 5
	// order 3 size 3
}
