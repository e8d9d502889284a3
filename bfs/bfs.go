package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/core"
)

// Unreached marks a vertex with no recorded depth or parent.
const Unreached = -1

type frontierItem struct {
	id    int
	depth int
}

// walker owns the per-call traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []frontierItem
	res   *BFSResult
}

// BFS explores g from start in non-decreasing hop distance.
// Neighbors are expanded in adjacency order, so Order is reproducible.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]frontierItem, 0, n),
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: filled(n, Unreached),
		},
	}
	w.push(start, 0)

	return w.res, w.run()
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// push records the depth at discovery time; a vertex is pushed once.
func (w *walker) push(id, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, frontierItem{id: id, depth: depth})
}

func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: visit %d: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if w.res.Depth[nbr] == Unreached {
				w.push(nbr, item.depth+1)
			}
		}
	}

	return nil
}

// Within returns, for every vertex v, the vertices at hop distance 1..d
// from v grouped by distance: Within(g,d)[v][k-1] lists distance-k vertices
// in BFS order.
//
// Complexity: O(V·(V+E)) time, O(V·V) space in the worst case.
func Within(g *core.Graph, d int) ([][][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if d < 1 {
		return nil, fmt.Errorf("%w: Within depth must be ≥ 1 (%d)", ErrOptionViolation, d)
	}

	out := make([][][]int, g.Order())
	for v := range out {
		rings := make([][]int, d)
		collect := func(id, depth int) error {
			if depth > 0 {
				rings[depth-1] = append(rings[depth-1], id)
			}
			return nil
		}
		if _, err := BFS(g, v, WithMaxDepth(d), WithOnVisit(collect)); err != nil {
			return nil, err
		}
		out[v] = rings
	}

	return out, nil
}
