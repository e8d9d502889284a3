package l321_test

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/builder"
	"github.com/katalvlaran/lvlabel/l321"
)

// ExampleMinSpan finds the L(3,2,1) span of the 4-cycle.
func ExampleMinSpan() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(4))
	res, err := l321.MinSpan(g, l321.WithOnAttempt(func(bound int, found bool) {
		fmt.Printf("bound %d: %v\n", bound, found)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("span", res.Span, res.Labeling)
	// Output:
	// bound 5: false
	// bound 6: false
	// bound 7: true
	// span 7 [0 5 2 7]
}
