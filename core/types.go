// Package core defines the Graph and Edge types consumed by every labeling
// search in lvlabel, together with the sentinel errors raised while a graph
// is being constructed.
//
// A Graph is built once from an edge list and is read-only afterwards, so it
// can be shared freely between goroutines without locking.
//
// Errors:
//
//	ErrVertexOutOfRange    - negative vertex id, or id ≥ the declared order.
//	ErrLoopNotAllowed      - edge with both endpoints equal.
//	ErrMultiEdgeNotAllowed - repeated vertex pair without WithMultiEdges.
//	ErrBadOrder            - WithOrder received a negative order.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexOutOfRange indicates a vertex id outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop in the input edge list.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadOrder indicates an invalid explicit vertex count.
	ErrBadOrder = errors.New("core: bad graph order")
)

// Edge is an unordered pair of vertex ids.
type Edge struct {
	// U is the first endpoint, as it appeared in the input.
	U int

	// V is the second endpoint, as it appeared in the input.
	V int
}

// GraphOption configures graph construction.
type GraphOption func(c *graphConfig)

// graphConfig collects construction-time policy.
type graphConfig struct {
	order      int  // explicit vertex count, valid when hasOrder
	hasOrder   bool // order was set through WithOrder
	allowMulti bool // allow parallel edges
}

// WithOrder fixes the vertex count to n, which allows isolated vertices with
// ids larger than any edge endpoint. Edge endpoints ≥ n are rejected.
func WithOrder(n int) GraphOption {
	return func(c *graphConfig) { c.order, c.hasOrder = n, true }
}

// WithMultiEdges permits parallel edges between the same pair of vertices.
// Each copy is counted by Size() and appears in both adjacency sequences.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// Graph is an undirected adjacency relation over the dense vertex ids
// 0..Order()-1.
//
// adjacency[v] lists the neighbors of v in edge-insertion order: every edge
// (u,v) appends v to adjacency[u] and u to adjacency[v]. The structure is
// never mutated after NewGraph returns.
type Graph struct {
	adjacency  [][]int // vertex id → ordered neighbor ids
	edges      []Edge  // edges in insertion order
	allowMulti bool    // construction policy, reported by Stats
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Order       int  // number of vertices
	Size        int  // number of edges
	MaxDegree   int  // Δ(G)
	MinDegree   int  // δ(G); 0 for the empty graph
	Isolated    int  // vertices of degree 0
	MultiEdges  bool // construction allowed parallel edges
	HasParallel bool // at least one parallel edge is present
}
