// Package builder provides "functional-options"-style constructors for the
// small, canonical graph families the labeling searches are run on.
//
// A Constructor appends edges to an Accumulator; BuildGraph runs one or more
// constructors and freezes the result through core.NewGraph, so loops,
// parallel edges and out-of-range ids are rejected in exactly one place.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithOffset(k):  shift every emitted id by k (panics on k < 0).
//   - Constructors (edge emission order is part of the contract):
//     – Edges(list)              explicit list, verbatim.
//     – Path(n)                  (i,i+1).
//     – Cycle(n)                 (i,i+1), then (n-1,0).
//     – Star(n)                  hub 0, leaves 1..n-1.
//     – Wheel(n)                 rim (1,2)…(n,1), then spokes (0,1)…(0,n).
//     – Complete(n)              (i,j) for i<j, lexicographic.
//     – CompleteBipartite(m,n)   (i,m+j), row-major.
//     – Grid(rows,cols)          row-major, right before down.
//   - Shortcuts:
//     – NewWheel(n)  = BuildGraph(nil, nil, Wheel(n)).
//
// Guarantees:
//
//   - Deterministic: the same constructors produce the same edge order, and
//     so the same adjacency order in the resulting core.Graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, wrapping
//     ErrTooFewVertices with the method name.
package builder
