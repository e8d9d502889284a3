// File: methods.go
// Role: Graph construction (NewGraph) and its validation rules.
// Determinism:
//   - Adjacency order follows edge order exactly; no sorting is applied.
// Errors:
//   - Every rejection is a wrapped sentinel from types.go, carrying the edge index.

package core

import (
	"fmt"
	"slices"
)

// NewGraph builds an immutable Graph from an ordered edge list.
//
// Implementation:
//   - Stage 1: Resolve options; validate an explicit order.
//   - Stage 2: Derive the order when none was given. The endpoints must then
//     cover 0..n-1 exactly; an id gap is rejected before any allocation.
//   - Stage 3: Validate every edge (range, self-loop, parallel edge).
//   - Stage 4: Append each edge to both endpoints' adjacency sequences.
//
// Errors:
//   - ErrBadOrder:            WithOrder(n) with n < 0.
//   - ErrVertexOutOfRange:    negative endpoint, endpoint ≥ explicit order,
//     or (derived order) an id in 0..max that no edge touches.
//   - ErrLoopNotAllowed:      U == V.
//   - ErrMultiEdgeNotAllowed: repeated pair without WithMultiEdges.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func NewGraph(edges []Edge, opts ...GraphOption) (*Graph, error) {
	// Stage 1: options.
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	explicit := cfg.hasOrder
	if explicit && cfg.order < 0 {
		return nil, fmt.Errorf("NewGraph: order=%d: %w", cfg.order, ErrBadOrder)
	}

	// Stage 2: derive order from the distinct endpoints; they must be dense.
	n := cfg.order
	if !explicit {
		var err error
		if n, err = denseOrder(edges); err != nil {
			return nil, err
		}
	}

	// Stage 3+4: validate and insert.
	g := &Graph{
		adjacency:  make([][]int, n),
		edges:      make([]Edge, 0, len(edges)),
		allowMulti: cfg.allowMulti,
	}
	seen := make(map[Edge]struct{}, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d) with order %d: %w", i, e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", i, e.U, e.V, ErrLoopNotAllowed)
		}
		key := canonical(e)
		if _, dup := seen[key]; dup && !cfg.allowMulti {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", i, e.U, e.V, ErrMultiEdgeNotAllowed)
		}
		seen[key] = struct{}{}

		g.adjacency[e.U] = append(g.adjacency[e.U], e.V)
		g.adjacency[e.V] = append(g.adjacency[e.V], e.U)
		g.edges = append(g.edges, e)
	}

	return g, nil
}

// denseOrder returns the number of distinct endpoints after checking that
// they are exactly 0..n-1. Use WithOrder to admit isolated vertices.
func denseOrder(edges []Edge) (int, error) {
	ids := make([]int, 0, 2*len(edges))
	for i, e := range edges {
		if e.U < 0 || e.V < 0 {
			return 0, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", i, e.U, e.V, ErrVertexOutOfRange)
		}
		ids = append(ids, e.U, e.V)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for want, id := range ids {
		if id != want {
			return 0, fmt.Errorf("NewGraph: vertex %d missing (max id %d): %w", want, ids[len(ids)-1], ErrVertexOutOfRange)
		}
	}

	return len(ids), nil
}

// canonical orders the endpoints so that (u,v) and (v,u) share a key.
func canonical(e Edge) Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}
