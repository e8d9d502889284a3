// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// impl_complete.go: implementation of Complete(n), CompleteBipartite(m,n)
// and Edges(list) constructors.
//
// Contract:
//   • Complete: n ≥ 1; emits (i,j) for all i<j in lexicographic order.
//   • CompleteBipartite: m,n ≥ 1; left part 0..m-1, right part m..m+n-1;
//     emits (i, m+j) row-major.
//   • Edges: copies an explicit list verbatim (offset applied). Validation
//     of loops and parallel edges is left to core.NewGraph.
//
// Complexity:
//   • Complete: O(n²).  CompleteBipartite: O(m·n).  Edges: O(len).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		acc.AddVertex(cfg.id(n - 1))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				acc.AddEdge(cfg.id(i), cfg.id(j))
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{m,n}.
func CompleteBipartite(m, n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if m < MinPartition || n < MinPartition {
			return builderErrorf(MethodCompleteBipartite, ErrTooFewVertices,
				"m=%d, n=%d (min=%d)", m, n, MinPartition)
		}

		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				acc.AddEdge(cfg.id(i), cfg.id(m+j))
			}
		}

		return nil
	}
}

// Edges returns a Constructor that replays an explicit edge list.
// Negative endpoints are rejected here since the offset could otherwise
// shift them into range.
func Edges(list []core.Edge) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		for i, e := range list {
			if e.U < 0 || e.V < 0 {
				return fmt.Errorf("%s: edge #%d (%d,%d): %w", MethodEdges, i, e.U, e.V, core.ErrVertexOutOfRange)
			}
			acc.AddEdge(cfg.id(e.U), cfg.id(e.V))
		}

		return nil
	}
}
