// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// impl_wheel.go: implementation of Wheel(n) and Star(n) constructors.
//
// Canonical definition:
//   • W_n = hub + C_n: hub at local index 0, rim vertices 1..n.
//   • Therefore n ≥ 3 (the rim must be a valid cycle). W_3 is K_4.
//
// Contract:
//   • Emits the rim first, using Cycle(n) shifted by one:
//       (1,2), (2,3), …, (n-1,n), (n,1)
//     then the spokes in increasing rim index:
//       (0,1), (0,2), …, (0,n)
//   • This edge order is relied upon by the wheel labeling search, whose
//     edge slots must match the rim-then-spokes layout.
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel W_n with n rim vertices.
func Wheel(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelRim); err != nil {
			return err
		}

		// Rim: C_n on local ids 1..n.
		if err := Cycle(n)(acc, cfg.shifted(1)); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n, err)
		}

		// Spokes in stable rim order.
		hub := cfg.id(HubVertex)
		for i := 1; i <= n; i++ {
			acc.AddEdge(hub, cfg.id(i))
		}

		return nil
	}
}

// Star returns a Constructor that builds K_{1,n-1}: n vertices in total,
// hub at local index 0, leaves 1..n-1.
func Star(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		hub := cfg.id(HubVertex)
		for i := 1; i < n; i++ {
			acc.AddEdge(hub, cfg.id(i))
		}

		return nil
	}
}
