// SPDX-License-Identifier: MIT
// Package backtrack: the depth-first engine.
//
// Rationale (succinct):
//  1. A dedicated engine struct keeps hot-path state explicit: the problem,
//     the sink, per-depth candidate buffers and the counters.
//  2. The recursion returns a stop flag instead of panicking or using a
//     shared boolean; every frame checks it right after its Undo. Both the
//     solution limit and a done context raise it.
//  3. Counters live in the engine and are returned in Result, so nothing is
//     process-global.

package backtrack

import (
	"context"
	"fmt"
)

// engine holds all search data and policies.
type engine struct {
	p     Problem
	sink  Sink
	n     int
	limit int
	ctx   context.Context
	cause error

	// bufs[i] is the reusable candidate buffer of the frame at slot i.
	bufs [][]int

	stats Stats
}

// Search runs depth-first backtracking over p, passing each complete
// assignment to sink.
//
// Errors:
//   - ErrNilProblem, ErrNilSink for nil arguments.
//   - ErrOptionViolation for invalid options.
//   - ErrStartOutOfRange when WithStart is outside [0, p.Len()].
//   - The context error when WithContext's ctx is done; Result then has
//     Outcome Cancelled and the counters reached so far, and every slot
//     from Start on has been undone.
//
// Finding no solution is not an error: check Result.Found().
func Search(p Problem, sink Sink, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if sink == nil {
		return Result{}, ErrNilSink
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Result{}, o.err
	}

	n := p.Len()
	if o.Start < 0 || o.Start > n {
		return Result{}, fmt.Errorf("Search: start=%d, len=%d: %w", o.Start, n, ErrStartOutOfRange)
	}

	e := engine{
		p:     p,
		sink:  sink,
		n:     n,
		limit: o.limit(),
		ctx:   o.Ctx,
		bufs:  make([][]int, n),
	}
	if e.ctx != nil {
		if err := e.ctx.Err(); err != nil {
			return Result{Outcome: Cancelled}, fmt.Errorf("Search: %w", err)
		}
	}

	res := Result{Outcome: Exhausted}
	if e.dfs(o.Start) {
		res.Outcome = Stopped
	}
	res.Stats = e.stats
	if e.cause != nil {
		res.Outcome = Cancelled
		return res, fmt.Errorf("Search: after %d nodes: %w", e.stats.Nodes, e.cause)
	}

	return res, nil
}

// cancelled polls the context every CheckEvery nodes and latches its error.
func (e *engine) cancelled() bool {
	if e.ctx == nil || e.stats.Nodes%CheckEvery != 0 {
		return false
	}
	e.cause = e.ctx.Err()

	return e.cause != nil
}

// dfs fills slot index and deeper. It returns true when the solution limit
// has been reached or the context is done; callers must stop iterating
// after their own Undo.
func (e *engine) dfs(index int) bool {
	e.stats.Nodes++
	if e.cancelled() {
		return true
	}

	// Base case: every slot is assigned.
	if index == e.n {
		e.stats.Solutions++
		e.sink(e.p.Assignment())

		return e.limit > 0 && e.stats.Solutions >= e.limit
	}

	e.bufs[index] = e.p.Candidates(index, e.bufs[index][:0])
	for _, v := range e.bufs[index] {
		if !e.p.Safe(index, v) {
			e.stats.Rejected++
			continue
		}
		e.p.Commit(index, v)
		e.stats.Commits++
		stop := e.dfs(index + 1)
		e.p.Undo(index)
		if stop {
			return true
		}
	}

	return false
}
