// SPDX-License-Identifier: MIT
// Package: lvlabel/builder
//
// api.go: public entry points: Constructor, BuildGraph and NewWheel.
//
// Contract:
//   • A Constructor appends edges (and optionally declares vertices) to an
//     Accumulator; it never builds the core.Graph itself.
//   • BuildGraph applies constructors in order, then freezes the result
//     through core.NewGraph, so every core validation rule still applies.
//   • Errors are sentinels wrapped with the method tag via %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/core"
)

// Constructor emits a topology into acc using the resolved configuration.
type Constructor func(acc *Accumulator, cfg builderConfig) error

// Accumulator collects edges in emission order and tracks the vertex count
// implied by every declared vertex or edge endpoint.
type Accumulator struct {
	edges []core.Edge
	order int
}

// AddVertex declares vertex v, extending the order to at least v+1.
func (a *Accumulator) AddVertex(v int) {
	a.order = max(a.order, v+1)
}

// AddEdge appends the edge (u,v) and declares both endpoints.
func (a *Accumulator) AddEdge(u, v int) {
	a.AddVertex(u)
	a.AddVertex(v)
	a.edges = append(a.edges, core.Edge{U: u, V: v})
}

// Len returns the number of accumulated edges.
func (a *Accumulator) Len() int { return len(a.edges) }

// BuildGraph runs each constructor against a shared accumulator and freezes
// the accumulated edges into a core.Graph.
//
// The accumulated order is passed first as core.WithOrder, so gopts may
// override it (e.g. to append isolated vertices).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph: ".
//   - any core.NewGraph sentinel (loops, parallel edges, range).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	acc := &Accumulator{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	opts := make([]core.GraphOption, 0, len(gopts)+1)
	opts = append(opts, core.WithOrder(acc.order))
	opts = append(opts, gopts...)
	g, err := core.NewGraph(acc.edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// NewWheel builds W_n: hub 0 joined to every vertex of the n-cycle 1..n.
// It is shorthand for BuildGraph(nil, nil, Wheel(n)).
func NewWheel(n int) (*core.Graph, error) {
	return BuildGraph(nil, nil, Wheel(n))
}
