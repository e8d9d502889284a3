// SPDX-License-Identifier: MIT

package backtrack

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Search.
var (
	// ErrNilProblem is returned when Search receives a nil Problem.
	ErrNilProblem = errors.New("backtrack: problem is nil")

	// ErrNilSink is returned when Search receives a nil Sink.
	ErrNilSink = errors.New("backtrack: sink is nil")

	// ErrStartOutOfRange is returned when WithStart points outside [0, Len()].
	ErrStartOutOfRange = errors.New("backtrack: start index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("backtrack: invalid option supplied")
)

// Unset marks an unassigned slot.
const Unset = -1

// Problem is the contract between the engine and a concrete search.
//
// Implementations keep their auxiliary state in lockstep with the
// assignment: Commit must update it after writing the slot and Undo must
// reverse exactly what the matching Commit did.
type Problem interface {
	// Len is the number of slots; a full assignment has Len() slots set.
	Len() int
	// Candidates appends the values to try at index, in order, to buf.
	Candidates(index int, buf []int) []int
	// Safe reports whether value may be committed at index given the
	// current partial assignment.
	Safe(index, value int) bool
	// Commit assigns value to index and updates auxiliary state.
	Commit(index, value int)
	// Undo clears index and reverses the matching Commit.
	Undo(index int)
	// Assignment returns the live assignment vector.
	Assignment() Assignment
}

// Sink receives each complete assignment. The slice is a view into the
// engine's state and must not be retained or modified.
type Sink func(Assignment)

// Mode selects how many solutions Search looks for.
type Mode int

const (
	// CollectAll explores the whole search tree.
	CollectAll Mode = iota
	// StopAtFirst unwinds after the first solution.
	StopAtFirst
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case CollectAll:
		return "collect-all"
	case StopAtFirst:
		return "stop-at-first"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Outcome reports why Search returned.
type Outcome int

const (
	// Exhausted means every branch was explored.
	Exhausted Outcome = iota
	// Stopped means the solution limit cut the search short.
	Stopped
	// Cancelled means the context passed through WithContext was done.
	Cancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Stopped:
		return "stopped"
	case Cancelled:
		return "cancelled"
	default:
		return "exhausted"
	}
}

// Stats counts search events.
type Stats struct {
	Nodes     int // frames entered, including leaves
	Commits   int // successful Safe → Commit transitions
	Rejected  int // candidates refused by Safe
	Solutions int // assignments passed to the sink
}

// Result is returned by Search.
type Result struct {
	Outcome Outcome
	Stats   Stats
}

// Found reports whether at least one solution was sunk.
func (r Result) Found() bool { return r.Stats.Solutions > 0 }

// Option configures Search.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a single Search call.
type Options struct {
	// Mode selects CollectAll or StopAtFirst.
	Mode Mode
	// Limit, if > 0, stops after that many solutions.
	Limit int
	// Start is the first slot the engine fills; slots before it must
	// already be committed by the caller.
	Start int
	// Ctx, if non-nil, is polled every CheckEvery nodes.
	Ctx context.Context

	err error
}

// CheckEvery is the node interval between context polls.
const CheckEvery = 1024

// DefaultOptions returns CollectAll from slot 0 with no limit.
func DefaultOptions() Options {
	return Options{Mode: CollectAll}
}

// WithMode selects the search mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != CollectAll && m != StopAtFirst {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithLimit stops the search after k solutions.
//
//	k > 0: limit to k
//	k == 0: no limit
//	k < 0: invalid option → ErrOptionViolation
func WithLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Limit = k
	}
}

// WithStart makes the engine begin at slot index, leaving the prefix as
// the caller committed it.
func WithStart(index int) Option {
	return func(o *Options) {
		o.Start = index
	}
}

// WithContext makes Search unwind with Outcome Cancelled and ctx.Err()
// once ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// limit resolves Mode and Limit to a single solution cap (0 = none).
func (o Options) limit() int {
	if o.Mode == StopAtFirst && (o.Limit == 0 || o.Limit > 1) {
		return 1
	}

	return o.Limit
}
