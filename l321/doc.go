// Package l321 searches for L(3,2,1)-labelings.
//
// An L(3,2,1)-labeling assigns non-negative integers to the vertices so that
// vertices at distance 1, 2 and 3 differ by at least 3, 2 and 1. The span of
// a labeling is its largest label.
//
// Two modes:
//
//	Enumerate / All    every labeling with labels in [0, maxLabel].
//	MinSpan            stop-at-first searches with bounds 2Δ+1, 2Δ+2, ...
//	                   until one succeeds; 2Δ+1 is a lower bound on the span
//	                   of any graph with a vertex of degree Δ.
//
// The safety check walks the adjacency lists directly (walks of length 1, 2
// and 3 from the vertex being labeled). Verify recomputes distances with BFS
// and is independent of the search.
package l321
