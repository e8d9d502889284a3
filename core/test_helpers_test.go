// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvlabel/core.
//
// Purpose:
//   - Provide small, deterministic edge-list fixtures.
//   - Keep the fixture shapes named so failures read well.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/core"
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NRounds  = 200
)

// triangleEdges is the 3-cycle 0-1-2-0.
func triangleEdges() []core.Edge {
	return []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
}

// starEdges is K_{1,leaves} with the hub at 0.
func starEdges(leaves int) []core.Edge {
	out := make([]core.Edge, 0, leaves)
	for i := 1; i <= leaves; i++ {
		out = append(out, core.Edge{U: 0, V: i})
	}

	return out
}

// mustGraph builds a graph or fails the test immediately.
func mustGraph(t *testing.T, edges []core.Edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(edges, opts...)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}
