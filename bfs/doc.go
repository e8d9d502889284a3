// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (Unreached = -1)
//   - OnVisit runs once per vertex in visit order and may abort with an error.
//   - WithMaxDepth bounds the explored radius.
//   - Within(g, d) collects, for every vertex, the rings at distance 1..d.
//     The L(3,2,1) verifier uses it with d = 3.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, which is edge-insertion order
//	in core.Graph, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth)
//
// Usage
//
//	result, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook errors
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      for a negative MaxDepth or Within depth < 1.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
