// SPDX-License-Identifier: MIT

package l321

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is given.
	ErrNilGraph = errors.New("l321: graph is nil")

	// ErrNegativeBound is returned for a negative label bound.
	ErrNegativeBound = errors.New("l321: label bound is negative")

	// ErrBoundExceeded is returned by MinSpan when no labeling exists up to
	// the configured maximum bound.
	ErrBoundExceeded = errors.New("l321: no labeling within maximum bound")

	// ErrNotL321 is returned by Verify.
	ErrNotL321 = errors.New("l321: labeling violates distance separation")
)

// Separation[k-1] is the minimum label difference at distance k.
var Separation = [3]int{3, 2, 1}

// Problem is the L(3,2,1) search over one graph with labels 0..maxLabel.
// It implements backtrack.Problem and keeps no auxiliary state.
type Problem struct {
	g        *core.Graph
	maxLabel int
	a        backtrack.Assignment
}

// NewProblem prepares a search over g with labels in [0, maxLabel].
func NewProblem(g *core.Graph, maxLabel int) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxLabel < 0 {
		return nil, fmt.Errorf("NewProblem: maxLabel=%d: %w", maxLabel, ErrNegativeBound)
	}

	return &Problem{g: g, maxLabel: maxLabel, a: backtrack.NewAssignment(g.Order())}, nil
}

// MaxLabel returns the label bound.
func (p *Problem) MaxLabel() int { return p.maxLabel }

// Len implements backtrack.Problem.
func (p *Problem) Len() int { return len(p.a) }

// Candidates implements backtrack.Problem: 0..maxLabel ascending.
func (p *Problem) Candidates(_ int, buf []int) []int {
	for l := 0; l <= p.maxLabel; l++ {
		buf = append(buf, l)
	}

	return buf
}

// Safe implements backtrack.Problem. Every labeled vertex reachable from v
// by a walk of length k ≤ 3 must differ from l by at least Separation[k-1].
// The vertex itself is unlabeled while it is being tested, so walks that
// return to v are ignored.
func (p *Problem) Safe(v, l int) bool {
	for _, u := range p.g.Neighbors(v) {
		if p.tooClose(l, u, 1) {
			return false
		}
		for _, w := range p.g.Neighbors(u) {
			if w != v && p.tooClose(l, w, 2) {
				return false
			}
			for _, x := range p.g.Neighbors(w) {
				if x != v && p.tooClose(l, x, 3) {
					return false
				}
			}
		}
	}

	return true
}

// tooClose reports whether labeled vertex u at walk length k conflicts with l.
func (p *Problem) tooClose(l, u, k int) bool {
	lu := p.a[u]

	return lu != backtrack.Unset && abs(l-lu) < Separation[k-1]
}

// Commit implements backtrack.Problem.
func (p *Problem) Commit(index, l int) { p.a[index] = l }

// Undo implements backtrack.Problem.
func (p *Problem) Undo(index int) { p.a[index] = backtrack.Unset }

// Assignment implements backtrack.Problem.
func (p *Problem) Assignment() backtrack.Assignment { return p.a }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
