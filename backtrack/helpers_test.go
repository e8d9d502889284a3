package backtrack_test

import "github.com/katalvlaran/lvlabel/backtrack"

// permutations is a minimal Problem: n slots, labels 0..n-1, all distinct.
// It records commit/undo depth so tests can check the discipline.
type permutations struct {
	a       backtrack.Assignment
	used    []bool
	live    int // commits not yet undone
	maxLive int
}

func newPermutations(n int) *permutations {
	return &permutations{a: backtrack.NewAssignment(n), used: make([]bool, n)}
}

func (p *permutations) Len() int { return len(p.a) }

func (p *permutations) Candidates(_ int, buf []int) []int {
	for v := range p.a {
		buf = append(buf, v)
	}
	return buf
}

func (p *permutations) Safe(_ int, v int) bool { return !p.used[v] }

func (p *permutations) Commit(i, v int) {
	p.a[i] = v
	p.used[v] = true
	p.live++
	p.maxLive = max(p.maxLive, p.live)
}

func (p *permutations) Undo(i int) {
	p.used[p.a[i]] = false
	p.a[i] = backtrack.Unset
	p.live--
}

func (p *permutations) Assignment() backtrack.Assignment { return p.a }
