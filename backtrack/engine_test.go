// SPDX-License-Identifier: MIT
// Package backtrack_test verifies the engine contract.
//
// Purpose:
//   - Lock in candidate order and solution order.
//   - Verify that stop-at-first and limits unwind every frame.
//   - Verify that every Commit is undone before Search returns.

package backtrack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/backtrack"
)

func TestSearch_CollectAll(t *testing.T) {
	p := newPermutations(3)
	c := backtrack.Collect()

	res, err := backtrack.Search(p, c.Sink)
	require.NoError(t, err)

	assert.Equal(t, backtrack.Exhausted, res.Outcome)
	assert.True(t, res.Found())
	assert.Equal(t, [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}, c.Solutions())
	assert.Equal(t, backtrack.Stats{Nodes: 16, Commits: 15, Rejected: 15, Solutions: 6}, res.Stats)

	// Discipline: nothing left committed.
	assert.Zero(t, p.live)
	assert.Equal(t, 3, p.maxLive)
	assert.Equal(t, backtrack.Assignment{-1, -1, -1}, p.Assignment())
}

func TestSearch_StopAtFirst(t *testing.T) {
	p := newPermutations(3)
	c := backtrack.Collect()

	res, err := backtrack.Search(p, c.Sink, backtrack.WithMode(backtrack.StopAtFirst))
	require.NoError(t, err)

	assert.Equal(t, backtrack.Stopped, res.Outcome)
	assert.Equal(t, [][]int{{0, 1, 2}}, c.Solutions())
	assert.Equal(t, backtrack.Stats{Nodes: 4, Commits: 3, Rejected: 3, Solutions: 1}, res.Stats)
	assert.Zero(t, p.live, "stop must still undo every frame")
	assert.False(t, p.Assignment().Contains(0))
}

func TestSearch_Limit(t *testing.T) {
	p := newPermutations(3)
	var n int

	res, err := backtrack.Search(p, backtrack.Count(&n), backtrack.WithLimit(4))
	require.NoError(t, err)
	assert.Equal(t, backtrack.Stopped, res.Outcome)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, res.Stats.Solutions)

	// A limit larger than the solution count never stops.
	n = 0
	res, err = backtrack.Search(p, backtrack.Count(&n), backtrack.WithLimit(100))
	require.NoError(t, err)
	assert.Equal(t, backtrack.Exhausted, res.Outcome)
	assert.Equal(t, 6, n)

	// StopAtFirst wins over a larger limit.
	res, err = backtrack.Search(p, backtrack.Discard, backtrack.WithLimit(3), backtrack.WithMode(backtrack.StopAtFirst))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Solutions)
}

func TestSearch_WithStart(t *testing.T) {
	p := newPermutations(4)
	p.Commit(0, 3)
	p.Commit(1, 0)
	c := backtrack.Collect()

	res, err := backtrack.Search(p, c.Sink, backtrack.WithStart(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 0, 1, 2}, {3, 0, 2, 1}}, c.Solutions())
	assert.Equal(t, 2, res.Stats.Solutions)

	// The caller-owned prefix is untouched.
	assert.Equal(t, backtrack.Assignment{3, 0, -1, -1}, p.Assignment())
	assert.Equal(t, 2, p.live)
}

func TestSearch_StartAtLen(t *testing.T) {
	p := newPermutations(2)
	p.Commit(0, 1)
	p.Commit(1, 0)
	c := backtrack.Collect()

	res, err := backtrack.Search(p, c.Sink, backtrack.WithStart(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}}, c.Solutions())
	assert.Equal(t, 1, res.Stats.Nodes)
}

func TestSearch_EmptyProblem(t *testing.T) {
	c := backtrack.Collect()
	res, err := backtrack.Search(newPermutations(0), c.Sink)
	require.NoError(t, err)
	// The empty assignment is the single solution.
	assert.Equal(t, [][]int{{}}, c.Solutions())
	assert.Equal(t, backtrack.Exhausted, res.Outcome)
}

func TestSearch_NoSolution(t *testing.T) {
	p := &emptyCandidates{a: backtrack.NewAssignment(2)}
	res, err := backtrack.Search(p, backtrack.Discard)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, backtrack.Exhausted, res.Outcome)
	assert.Equal(t, 1, res.Stats.Nodes)
}

func TestSearch_Errors(t *testing.T) {
	_, err := backtrack.Search(nil, backtrack.Discard)
	assert.ErrorIs(t, err, backtrack.ErrNilProblem)

	_, err = backtrack.Search(newPermutations(2), nil)
	assert.ErrorIs(t, err, backtrack.ErrNilSink)

	_, err = backtrack.Search(newPermutations(2), backtrack.Discard, backtrack.WithLimit(-1))
	assert.ErrorIs(t, err, backtrack.ErrOptionViolation)

	_, err = backtrack.Search(newPermutations(2), backtrack.Discard, backtrack.WithMode(backtrack.Mode(7)))
	assert.ErrorIs(t, err, backtrack.ErrOptionViolation)

	for _, s := range []int{-1, 3} {
		_, err = backtrack.Search(newPermutations(2), backtrack.Discard, backtrack.WithStart(s))
		assert.ErrorIs(t, err, backtrack.ErrStartOutOfRange)
	}
}

func TestSink_ViewIsLive(t *testing.T) {
	p := newPermutations(2)
	var views []backtrack.Assignment
	c := backtrack.Collect()

	_, err := backtrack.Search(p, backtrack.Tee(c.Sink, func(a backtrack.Assignment) { views = append(views, a) }))
	require.NoError(t, err)

	// Retained views alias the live state, which is reset after Search.
	require.Len(t, views, 2)
	assert.Equal(t, backtrack.Assignment{-1, -1}, views[0])
	// Collected clones keep their values.
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, c.Solutions())
	assert.Equal(t, 2, c.Len())
}

func TestAssignment(t *testing.T) {
	a := backtrack.NewAssignment(3)
	assert.False(t, a.Complete())
	assert.False(t, a.Contains(0))

	a[0], a[1], a[2] = 4, 0, 2
	assert.True(t, a.Complete())
	assert.True(t, a.Contains(0))

	cl := a.Clone()
	cl[0] = 9
	assert.Equal(t, 4, a[0])

	a.Reset()
	assert.Equal(t, backtrack.Assignment{-1, -1, -1}, a)
}

func TestModeOutcomeString(t *testing.T) {
	assert.Equal(t, "collect-all", backtrack.CollectAll.String())
	assert.Equal(t, "stop-at-first", backtrack.StopAtFirst.String())
	assert.Equal(t, "Mode(9)", backtrack.Mode(9).String())
	assert.Equal(t, "exhausted", backtrack.Exhausted.String())
	assert.Equal(t, "stopped", backtrack.Stopped.String())
	assert.Equal(t, "cancelled", backtrack.Cancelled.String())
}

func TestSearch_CancelledMidSearch(t *testing.T) {
	p := newPermutations(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var n int
	res, err := backtrack.Search(p, backtrack.Tee(backtrack.Count(&n), func(backtrack.Assignment) { cancel() }),
		backtrack.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, backtrack.Cancelled, res.Outcome)
	assert.Equal(t, n, res.Stats.Solutions)
	assert.Less(t, n, 40320)
	assert.LessOrEqual(t, res.Stats.Nodes, 2*backtrack.CheckEvery)

	// Every frame unwound through Undo.
	assert.Zero(t, p.live)
	assert.Equal(t, backtrack.NewAssignment(8), p.Assignment())
}

func TestSearch_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := backtrack.Search(newPermutations(3), backtrack.Discard, backtrack.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, backtrack.Cancelled, res.Outcome)
	assert.Zero(t, res.Stats.Nodes)
}

func TestSearch_LiveContextIsExhaustive(t *testing.T) {
	var n int
	res, err := backtrack.Search(newPermutations(4), backtrack.Count(&n), backtrack.WithContext(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, backtrack.Exhausted, res.Outcome)
	assert.Equal(t, 24, n)
}

// emptyCandidates never offers a value.
type emptyCandidates struct{ a backtrack.Assignment }

func (p *emptyCandidates) Len() int                          { return len(p.a) }
func (p *emptyCandidates) Candidates(_ int, buf []int) []int { return buf }
func (p *emptyCandidates) Safe(int, int) bool                { return true }
func (p *emptyCandidates) Commit(i, v int)                   { p.a[i] = v }
func (p *emptyCandidates) Undo(i int)                        { p.a[i] = backtrack.Unset }
func (p *emptyCandidates) Assignment() backtrack.Assignment  { return p.a }
