// Package edgelist reads graphs written as whitespace-separated integer
// pairs, one edge per pair, until end of input:
//
//	0 1
//	1 2   2 0
//
// Line breaks carry no meaning. A trailing unpaired integer is dropped and
// reported through List.Truncated (or rejected with WithStrict). Any token
// that is not an integer is an error carrying its 1-based token position.
package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlabel/core"
)

// Sentinel errors.
var (
	// ErrMalformedToken is returned for a token that is not an integer.
	ErrMalformedToken = errors.New("edgelist: malformed token")

	// ErrPartialEdge is returned in strict mode for a trailing unpaired integer.
	ErrPartialEdge = errors.New("edgelist: trailing unpaired vertex")
)

// List is the parsed content of an edge-list stream.
type List struct {
	// Edges in input order.
	Edges []core.Edge
	// Truncated is true when a trailing unpaired integer was dropped.
	Truncated bool
	// Dangling is the dropped integer when Truncated is true.
	Dangling int
	// Tokens is the number of integers read, including a dangling one.
	Tokens int
}

// Option configures reading.
type Option func(*options)

type options struct {
	strict      bool
	onTruncated func(dangling int)
	graphOpts   []core.GraphOption
}

// WithStrict makes a trailing unpaired integer an ErrPartialEdge error.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithOnTruncated registers fn to be called with the dropped integer.
func WithOnTruncated(fn func(dangling int)) Option {
	return func(o *options) { o.onTruncated = fn }
}

// WithGraphOptions passes core options through to ReadGraph.
func WithGraphOptions(gopts ...core.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, gopts...) }
}

// Read parses r until EOF.
func Read(r io.Reader, opts ...Option) (*List, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	l := &List{}
	var (
		pending int
		half    bool
	)
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedToken, "token %d %q", l.Tokens+1, tok)
		}
		l.Tokens++
		if !half {
			pending, half = v, true
			continue
		}
		l.Edges = append(l.Edges, core.Edge{U: pending, V: v})
		half = false
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "edgelist: read")
	}

	if half {
		if o.strict {
			return nil, errors.Wrapf(ErrPartialEdge, "token %d (%d)", l.Tokens, pending)
		}
		l.Truncated, l.Dangling = true, pending
		if o.onTruncated != nil {
			o.onTruncated(pending)
		}
	}

	return l, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "edgelist: open")
	}
	defer f.Close()

	l, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return l, nil
}

// ReadGraph parses r and builds a core.Graph from the edges. Vertex-range,
// loop and parallel-edge checks are those of core.NewGraph.
func ReadGraph(r io.Reader, opts ...Option) (*core.Graph, error) {
	l, err := Read(r, opts...)
	if err != nil {
		return nil, err
	}

	return l.Graph(opts...)
}

// Graph builds a core.Graph from the list, honoring WithGraphOptions.
func (l *List) Graph(opts ...Option) (*core.Graph, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	g, err := core.NewGraph(l.Edges, o.graphOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "edgelist: build graph")
	}

	return g, nil
}
