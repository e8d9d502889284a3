package graceful

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/builder"
	"github.com/katalvlaran/lvlabel/symmetry"
)

// Fixed prefix of every wheel search.
const (
	wheelHub      = 0
	wheelFirstRim = 1
	wheelStart    = 2
)

// WheelReport is the outcome of a wheel search.
type WheelReport struct {
	// N is the rim length of W_N.
	N int
	// All holds every labeling found, in discovery order.
	All [][]int
	// Duplicate[i] is true when All[i] mirrors an earlier labeling.
	Duplicate []bool
	// Distinct holds the non-duplicate labelings in discovery order.
	Distinct [][]int
	// Stats are the engine counters of the search.
	Stats backtrack.Stats
}

// Total is the number of labelings left after symmetry reduction.
func (r *WheelReport) Total() int { return len(r.Distinct) }

// Wheel finds the graceful labelings of W_n with the hub labeled 0 and rim
// vertex 1 labeled 2n, then drops mirror-complementary duplicates.
// opts go to the engine (WithContext, WithLimit); the search always starts
// after the fixed prefix.
func Wheel(n int, opts ...backtrack.Option) (*WheelReport, error) {
	g, err := builder.NewWheel(n)
	if err != nil {
		return nil, fmt.Errorf("Wheel: %w", err)
	}
	p, err := NewProblem(g)
	if err != nil {
		return nil, fmt.Errorf("Wheel: %w", err)
	}
	if err = p.Fix(wheelHub, 0); err != nil {
		return nil, fmt.Errorf("Wheel: %w", err)
	}
	if err = p.Fix(wheelFirstRim, p.MaxLabel()); err != nil {
		return nil, fmt.Errorf("Wheel: %w", err)
	}

	c := backtrack.Collect()
	opts = append(opts[:len(opts):len(opts)], backtrack.WithStart(wheelStart))
	res, err := backtrack.Search(p, c.Sink, opts...)
	if err != nil {
		return nil, fmt.Errorf("Wheel: %w", err)
	}

	distinct, dup, err := symmetry.Reduce(c.Solutions(), n)
	if err != nil {
		return nil, fmt.Errorf("Wheel: %w", err)
	}

	return &WheelReport{
		N:         n,
		All:       c.Solutions(),
		Duplicate: dup,
		Distinct:  distinct,
		Stats:     res.Stats,
	}, nil
}
