// SPDX-License-Identifier: MIT
// Package l321: minimum-span search.
//
// Rationale (succinct):
//  1. Start at 2Δ+1: a vertex of degree Δ and its neighbors need labels
//     pairwise ≥ 2 apart, and the vertex itself ≥ 3 from each of them.
//  2. Run a stop-at-first search per bound, incrementing by one on failure.
//     The first success is the minimum span.
//  3. Labels 0,3,6,…,3(n−1) always work, so the loop terminates by
//     bound 3(n−1) at the latest.

package l321

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/core"
)

// SpanResult is the outcome of MinSpan.
type SpanResult struct {
	// Span is the largest label in Labeling.
	Span int
	// Bound is the label bound at which the search first succeeded.
	Bound int
	// Labeling is the first labeling found at Bound.
	Labeling []int
	// Tried lists every bound searched, in order.
	Tried []int
	// Stats accumulates engine counters over all attempts.
	Stats backtrack.Stats
}

// SpanOption configures MinSpan.
type SpanOption func(*spanConfig)

type spanConfig struct {
	onAttempt func(bound int, found bool)
	search    []backtrack.Option
	maxBound  int
	hasMax    bool
	err       error
}

// WithOnAttempt registers fn to observe each (bound, found) pair.
func WithOnAttempt(fn func(bound int, found bool)) SpanOption {
	return func(c *spanConfig) {
		if fn != nil {
			c.onAttempt = fn
		}
	}
}

// WithSearchOptions forwards engine options (typically
// backtrack.WithContext) to every per-bound search. The stop-at-first mode
// is always applied last.
func WithSearchOptions(opts ...backtrack.Option) SpanOption {
	return func(c *spanConfig) {
		c.search = append(c.search, opts...)
	}
}

// WithMaxBound caps the bounds MinSpan tries; exceeding it yields
// ErrBoundExceeded. Negative values are rejected with ErrNegativeBound.
func WithMaxBound(b int) SpanOption {
	return func(c *spanConfig) {
		if b < 0 {
			c.err = fmt.Errorf("WithMaxBound(%d): %w", b, ErrNegativeBound)
			return
		}
		c.maxBound, c.hasMax = b, true
	}
}

// InitialBound returns 2Δ(G)+1.
func InitialBound(g *core.Graph) int {
	return 2*g.MaxDegree() + 1
}

// Ceiling returns the largest bound MinSpan ever needs: 3(n−1), or the
// initial bound when that is larger.
func Ceiling(g *core.Graph) int {
	return max(3*(g.Order()-1), InitialBound(g))
}

// MinSpan finds a minimum-span L(3,2,1)-labeling of g.
func MinSpan(g *core.Graph, opts ...SpanOption) (SpanResult, error) {
	if g == nil {
		return SpanResult{}, ErrNilGraph
	}
	cfg := spanConfig{onAttempt: func(int, bool) {}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return SpanResult{}, cfg.err
	}
	limit := Ceiling(g)
	if cfg.hasMax {
		limit = min(limit, cfg.maxBound)
	}

	searchOpts := append(cfg.search[:len(cfg.search):len(cfg.search)], backtrack.WithMode(backtrack.StopAtFirst))

	var out SpanResult
	for bound := InitialBound(g); bound <= limit; bound++ {
		p, err := NewProblem(g, bound)
		if err != nil {
			return SpanResult{}, err
		}
		c := backtrack.Collect()
		res, err := backtrack.Search(p, c.Sink, searchOpts...)
		if err != nil {
			return SpanResult{}, fmt.Errorf("MinSpan: bound %d: %w", bound, err)
		}

		out.Tried = append(out.Tried, bound)
		addStats(&out.Stats, res.Stats)
		cfg.onAttempt(bound, res.Found())

		if res.Found() {
			out.Bound = bound
			out.Labeling = c.Solutions()[0]
			out.Span = Span(out.Labeling)

			return out, nil
		}
	}

	return out, fmt.Errorf("MinSpan: tried %v: %w", out.Tried, ErrBoundExceeded)
}

func addStats(dst *backtrack.Stats, s backtrack.Stats) {
	dst.Nodes += s.Nodes
	dst.Commits += s.Commits
	dst.Rejected += s.Rejected
	dst.Solutions += s.Solutions
}
