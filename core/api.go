// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: order, size, membership, edge catalog and stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Returned slices are copies unless documented otherwise.

package core

import "slices"

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.adjacency) }

// Size returns the number of edges, counting parallel edges individually.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex id of g.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adjacency) }

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// MultiEdges reports whether parallel edges were permitted at construction.
func (g *Graph) MultiEdges() bool { return g.allowMulti }

// Stats produces a snapshot of the graph's shape.
//
// Implementation:
//   - Stage 1: One pass over adjacency for degree extremes and isolated count.
//   - Stage 2: One pass over edges to detect parallel pairs.
//
// Complexity:
//   - Time O(V + E), Space O(E) for the pair set.
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		Order:      g.Order(),
		Size:       g.Size(),
		MultiEdges: g.allowMulti,
	}

	// Stage 1: degrees.
	for i, adj := range g.adjacency {
		d := len(adj)
		if d == 0 {
			st.Isolated++
		}
		st.MaxDegree = max(st.MaxDegree, d)
		if i == 0 || d < st.MinDegree {
			st.MinDegree = d
		}
	}

	// Stage 2: parallel edges.
	if g.allowMulti {
		seen := make(map[Edge]struct{}, len(g.edges))
		for _, e := range g.edges {
			key := canonical(e)
			if _, dup := seen[key]; dup {
				st.HasParallel = true
				break
			}
			seen[key] = struct{}{}
		}
	}

	return st
}
