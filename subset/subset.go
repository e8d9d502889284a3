// Package subset enumerates every subset of {1..n} with the backtracking
// engine: one slot per element, holding Included or Excluded.
//
// Each element is tried as Included first, so the enumeration starts at the
// full set and ends at the empty set:
//
//	n = 3: {1 2 3} {1 2} {1 3} {1} {2 3} {2} {3} {}
package subset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlabel/backtrack"
)

// MaxSize is the largest supported ground set.
const MaxSize = 50

// Slot values.
const (
	Excluded = 0
	Included = 1
)

// ErrSizeOutOfRange is returned for n < 0 or n > MaxSize.
var ErrSizeOutOfRange = errors.New("subset: size out of range")

// Problem is the subset search state. Every candidate is safe.
type Problem struct {
	a backtrack.Assignment
}

// NewProblem returns the subset problem over {1..n}.
func NewProblem(n int) (*Problem, error) {
	if n < 0 || n > MaxSize {
		return nil, fmt.Errorf("NewProblem: n=%d not in [0,%d]: %w", n, MaxSize, ErrSizeOutOfRange)
	}

	return &Problem{a: backtrack.NewAssignment(n)}, nil
}

// Len implements backtrack.Problem.
func (p *Problem) Len() int { return len(p.a) }

// Candidates implements backtrack.Problem: Included, then Excluded.
func (p *Problem) Candidates(_ int, buf []int) []int {
	return append(buf, Included, Excluded)
}

// Safe implements backtrack.Problem.
func (p *Problem) Safe(int, int) bool { return true }

// Commit implements backtrack.Problem.
func (p *Problem) Commit(index, value int) { p.a[index] = value }

// Undo implements backtrack.Problem.
func (p *Problem) Undo(index int) { p.a[index] = backtrack.Unset }

// Assignment implements backtrack.Problem.
func (p *Problem) Assignment() backtrack.Assignment { return p.a }

// Members converts an inclusion mask into the 1-based chosen elements.
func Members(mask []int) []int {
	out := make([]int, 0, len(mask))
	for i, v := range mask {
		if v == Included {
			out = append(out, i+1)
		}
	}

	return out
}

// Generate streams the member list of every subset of {1..n} to fn.
func Generate(n int, fn func(members []int), opts ...backtrack.Option) (backtrack.Result, error) {
	p, err := NewProblem(n)
	if err != nil {
		return backtrack.Result{}, err
	}

	return backtrack.Search(p, func(a backtrack.Assignment) { fn(Members(a)) }, opts...)
}

// All collects every subset of {1..n} in enumeration order.
// The result has 2^n entries, so keep n small.
func All(n int) ([][]int, error) {
	var out [][]int
	if _, err := Generate(n, func(m []int) { out = append(out, m) }); err != nil {
		return nil, err
	}

	return out, nil
}
