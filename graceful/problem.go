// SPDX-License-Identifier: MIT

package graceful

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is given.
	ErrNilGraph = errors.New("graceful: graph is nil")

	// ErrConflict is returned by Fix when the label cannot be placed.
	ErrConflict = errors.New("graceful: label conflicts with current state")

	// ErrNotGraceful is returned by Verify.
	ErrNotGraceful = errors.New("graceful: labeling is not graceful")
)

// Problem is the graceful labeling search over one graph.
// It implements backtrack.Problem and must not be searched concurrently.
type Problem struct {
	g *core.Graph
	m int

	a         backtrack.Assignment
	usedLabel []bool
	diffs     *treeset.Set

	// inserted[v] holds the differences that Commit(v, ·) added to diffs.
	inserted [][]int
	// scratch collects the differences of the candidate under test.
	scratch []int
}

// NewProblem prepares a search over g with labels 0..g.Size().
func NewProblem(g *core.Graph) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m := g.Size()
	n := g.Order()

	return &Problem{
		g:         g,
		m:         m,
		a:         backtrack.NewAssignment(n),
		usedLabel: make([]bool, m+1),
		diffs:     treeset.NewWithIntComparator(),
		inserted:  make([][]int, n),
	}, nil
}

// MaxLabel is m, the largest usable label.
func (p *Problem) MaxLabel() int { return p.m }

// Len implements backtrack.Problem.
func (p *Problem) Len() int { return len(p.a) }

// Candidates implements backtrack.Problem: 0..m ascending.
func (p *Problem) Candidates(_ int, buf []int) []int {
	for l := 0; l <= p.m; l++ {
		buf = append(buf, l)
	}

	return buf
}

// Safe implements backtrack.Problem.
func (p *Problem) Safe(index, l int) bool {
	if l < 0 || l > p.m || p.usedLabel[l] {
		return false
	}

	p.scratch = p.scratch[:0]
	for _, u := range p.g.Neighbors(index) {
		lu := p.a[u]
		if lu == backtrack.Unset {
			continue
		}
		d := abs(l - lu)
		if p.diffs.Contains(d) || contains(p.scratch, d) {
			return false
		}
		p.scratch = append(p.scratch, d)
	}

	return true
}

// Commit implements backtrack.Problem.
func (p *Problem) Commit(index, l int) {
	p.a[index] = l
	p.usedLabel[l] = true

	ins := p.inserted[index][:0]
	for _, u := range p.g.Neighbors(index) {
		lu := p.a[u]
		if lu == backtrack.Unset {
			continue
		}
		d := abs(l - lu)
		p.diffs.Add(d)
		ins = append(ins, d)
	}
	p.inserted[index] = ins
}

// Undo implements backtrack.Problem.
func (p *Problem) Undo(index int) {
	for _, d := range p.inserted[index] {
		p.diffs.Remove(d)
	}
	p.inserted[index] = p.inserted[index][:0]
	p.usedLabel[p.a[index]] = false
	p.a[index] = backtrack.Unset
}

// Assignment implements backtrack.Problem.
func (p *Problem) Assignment() backtrack.Assignment { return p.a }

// Fix assigns label to vertex index before a search, through the same
// Safe/Commit path the engine uses.
func (p *Problem) Fix(index, label int) error {
	if index < 0 || index >= len(p.a) {
		return fmt.Errorf("Fix: vertex %d not in [0,%d): %w", index, len(p.a), ErrConflict)
	}
	if p.a[index] != backtrack.Unset {
		return fmt.Errorf("Fix: vertex %d already labeled %d: %w", index, p.a[index], ErrConflict)
	}
	if !p.Safe(index, label) {
		return fmt.Errorf("Fix: label %d at vertex %d: %w", label, index, ErrConflict)
	}
	p.Commit(index, label)

	return nil
}

// UsedDifferences returns the realized edge differences in ascending order.
func (p *Problem) UsedDifferences() []int {
	vals := p.diffs.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}

	return false
}
