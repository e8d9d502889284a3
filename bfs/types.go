package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start id is outside 0..n-1.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carried a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a single BFS call.
type Option func(*Options)

// Options is the resolved BFS configuration. A rejected Option is recorded
// in err and surfaced by BFS before any vertex is touched.
type Options struct {
	// OnVisit runs once per vertex in visit order; a non-nil error aborts.
	OnVisit func(id, depth int) error

	// MaxDepth bounds the explored radius; 0 means unbounded.
	MaxDepth int

	err error
}

func defaultOptions() Options {
	return Options{OnVisit: func(int, int) error { return nil }}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expansion at hop distance d. Negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is indexed by vertex id; Depth holds Unreached for vertices
// the traversal never touched.
type BFSResult struct {
	Order []int
	Depth []int
}

// Reached reports whether v got a depth.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}
