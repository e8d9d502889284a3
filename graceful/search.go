package graceful

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/core"
)

// ForEach streams every graceful labeling of g to sink, in lexicographic
// order of the label vector.
func ForEach(g *core.Graph, sink backtrack.Sink, opts ...backtrack.Option) (backtrack.Result, error) {
	p, err := NewProblem(g)
	if err != nil {
		return backtrack.Result{}, err
	}

	return backtrack.Search(p, sink, opts...)
}

// All collects every graceful labeling of g.
func All(g *core.Graph) ([][]int, error) {
	c := backtrack.Collect()
	if _, err := ForEach(g, c.Sink); err != nil {
		return nil, err
	}

	return c.Solutions(), nil
}

// First returns the lexicographically smallest graceful labeling of g.
// ok is false when g has none.
func First(g *core.Graph) (labeling []int, ok bool, err error) {
	c := backtrack.Collect()
	res, err := ForEach(g, c.Sink, backtrack.WithMode(backtrack.StopAtFirst))
	if err != nil || !res.Found() {
		return nil, false, err
	}

	return c.Solutions()[0], true, nil
}

// Verify checks that labeling is a graceful labeling of g.
func Verify(g *core.Graph, labeling []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(labeling) != g.Order() {
		return fmt.Errorf("Verify: %d labels for %d vertices: %w", len(labeling), g.Order(), ErrNotGraceful)
	}

	m := g.Size()
	usedLabel := make([]bool, m+1)
	for v, l := range labeling {
		if l < 0 || l > m {
			return fmt.Errorf("Verify: vertex %d label %d not in [0,%d]: %w", v, l, m, ErrNotGraceful)
		}
		if usedLabel[l] {
			return fmt.Errorf("Verify: label %d repeated: %w", l, ErrNotGraceful)
		}
		usedLabel[l] = true
	}

	// m edges with distinct differences in 1..m cover 1..m exactly.
	usedDiff := make([]bool, m+1)
	for _, e := range g.Edges() {
		d := abs(labeling[e.U] - labeling[e.V])
		if d == 0 || usedDiff[d] {
			return fmt.Errorf("Verify: edge (%d,%d) difference %d repeated: %w", e.U, e.V, d, ErrNotGraceful)
		}
		usedDiff[d] = true
	}

	return nil
}
