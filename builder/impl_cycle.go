// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// impl_cycle.go: implementation of Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order (i, i+1) for i=0..n-2, then (n-1, 0).
//   • Path: n ≥ 1; emits (i, i+1) for i=0..n-2 and declares every vertex,
//     so Path(1) is a single isolated vertex.
//   • All ids are shifted by the configured offset.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.

package builder

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		// Ring steps in ascending i; the closing edge comes last.
		for i := 0; i < n-1; i++ {
			acc.AddEdge(cfg.id(i), cfg.id(i+1))
		}
		acc.AddEdge(cfg.id(n-1), cfg.id(0))

		return nil
	}
}

// Path returns a Constructor that builds the path P_n on n vertices.
func Path(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		acc.AddVertex(cfg.id(n - 1))
		for i := 0; i < n-1; i++ {
			acc.AddEdge(cfg.id(i), cfg.id(i+1))
		}

		return nil
	}
}
