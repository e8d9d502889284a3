// Package core provides the immutable, integer-indexed Graph that every
// labeling search in lvlabel reads from.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - Vertices are the dense ids 0..n-1; n is the number of vertex keys.
//   - Edges are undirected; each edge is appended to both endpoints'
//     adjacency sequences, so neighbor order equals edge-insertion order.
//   - Self-loops are always rejected (a loop would induce the edge label 0).
//   - Parallel edges are rejected unless WithMultiEdges() is given.
//   - Nothing mutates a Graph after NewGraph returns; concurrent readers
//     need no locks.
//
// Configuration Options (GraphOption):
//
//	– WithOrder(n)
//	    Fixes the vertex count, allowing isolated vertices. Endpoints ≥ n
//	    → ErrVertexOutOfRange. Without it the order is derived from the
//	    edges, whose endpoints must be exactly 0..n-1; a gap is an
//	    ErrVertexOutOfRange naming the first missing id.
//
//	– WithMultiEdges()
//	    Allows repeated vertex pairs; each copy counts toward Size().
//
// Core Methods:
//
//	NewGraph(edges, opts...) (*Graph, error) // O(V + E log E)
//	Order() int                              // O(1)
//	Size() int                               // O(1)
//	Neighbors(v int) []int                   // O(1), shared read-only slice
//	HasEdge(u, v int) bool                   // O(min deg)
//	Degree(v int) int                        // O(1)
//	MaxDegree() int                          // O(V)
//	Edges() []Edge                           // O(E), copy
//	Stats() GraphStats                       // O(V+E)
//
// Errors are construction-time only: an out-of-range vertex id in the input
// never reaches a search.
package core
