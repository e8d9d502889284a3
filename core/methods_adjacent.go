// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, HasEdge, Degree, MaxDegree).
// Determinism:
//   - Neighbor order is edge-insertion order; parallel edges repeat the neighbor.
// Concurrency:
//   - The graph is immutable; all reads are lock-free.

package core

import "slices"

// Neighbors returns the adjacency sequence of v.
//
// The returned slice aliases the graph's storage and MUST NOT be modified;
// it is exposed without copying because safety predicates call it once per
// candidate. An id outside 0..Order()-1 yields nil.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adjacency[v]
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	// scan the shorter list
	a, b := g.adjacency[u], v
	if len(g.adjacency[v]) < len(a) {
		a, b = g.adjacency[v], u
	}

	return slices.Contains(a, b)
}

// Degree returns the number of edge endpoints at v (parallel edges count
// separately), or 0 for an id outside the graph.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adjacency[v])
}

// MaxDegree returns Δ(G), the largest vertex degree; 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, adj := range g.adjacency {
		best = max(best, len(adj))
	}

	return best
}
