// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has local id r*cols + c.
//   • Edges are emitted in row-major order; for each cell the right
//     neighbor precedes the down neighbor.
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(1) extra.

package builder

// Grid returns a Constructor that builds the rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, ErrTooFewVertices,
				"rows=%d, cols=%d (min=%d)", rows, cols, MinGridDim)
		}

		acc.AddVertex(cfg.id(rows*cols - 1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					acc.AddEdge(cfg.id(u), cfg.id(u+1))
				}
				if r+1 < rows {
					acc.AddEdge(cfg.id(u), cfg.id(u+cols))
				}
			}
		}

		return nil
	}
}
