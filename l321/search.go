package l321

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/bfs"
	"github.com/katalvlaran/lvlabel/core"
)

// DefaultMaxLabel is the bound used when none is configured.
const DefaultMaxLabel = 7

// Enumerate streams every L(3,2,1)-labeling of g with labels in
// [0, maxLabel] to sink, in lexicographic order.
func Enumerate(g *core.Graph, maxLabel int, sink backtrack.Sink, opts ...backtrack.Option) (backtrack.Result, error) {
	p, err := NewProblem(g, maxLabel)
	if err != nil {
		return backtrack.Result{}, err
	}

	return backtrack.Search(p, sink, opts...)
}

// All collects every L(3,2,1)-labeling of g with labels in [0, maxLabel].
func All(g *core.Graph, maxLabel int) ([][]int, error) {
	c := backtrack.Collect()
	if _, err := Enumerate(g, maxLabel, c.Sink); err != nil {
		return nil, err
	}

	return c.Solutions(), nil
}

// Span returns the largest label in labeling, or 0 when it is empty.
func Span(labeling []int) int {
	s := 0
	for _, l := range labeling {
		s = max(s, l)
	}

	return s
}

// Verify checks labeling against true graph distances computed by BFS.
func Verify(g *core.Graph, labeling []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(labeling) != g.Order() {
		return fmt.Errorf("Verify: %d labels for %d vertices: %w", len(labeling), g.Order(), ErrNotL321)
	}
	for v, l := range labeling {
		if l < 0 {
			return fmt.Errorf("Verify: vertex %d label %d: %w", v, l, ErrNegativeBound)
		}
	}

	rings, err := bfs.Within(g, len(Separation))
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	for v, byDist := range rings {
		for k, ring := range byDist {
			for _, u := range ring {
				if abs(labeling[v]-labeling[u]) < Separation[k] {
					return fmt.Errorf("Verify: vertices %d,%d at distance %d labeled %d,%d: %w",
						v, u, k+1, labeling[v], labeling[u], ErrNotL321)
				}
			}
		}
	}

	return nil
}
