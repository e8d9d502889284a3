package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/core"
	"github.com/katalvlaran/lvlabel/edgelist"
)

func TestRead_Pairs(t *testing.T) {
	l, err := edgelist.Read(strings.NewReader("0 1\n1 2   2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, l.Edges)
	assert.False(t, l.Truncated)
	assert.Equal(t, 6, l.Tokens)
}

func TestRead_Empty(t *testing.T) {
	l, err := edgelist.Read(strings.NewReader("  \n\t"))
	require.NoError(t, err)
	assert.Empty(t, l.Edges)
	assert.Zero(t, l.Tokens)
}

func TestRead_TrailingPartial(t *testing.T) {
	var dropped []int
	l, err := edgelist.Read(strings.NewReader("0 1 1 2 7"),
		edgelist.WithOnTruncated(func(v int) { dropped = append(dropped, v) }))
	require.NoError(t, err)
	assert.Len(t, l.Edges, 2)
	assert.True(t, l.Truncated)
	assert.Equal(t, 7, l.Dangling)
	assert.Equal(t, []int{7}, dropped)

	_, err = edgelist.Read(strings.NewReader("0 1 1 2 7"), edgelist.WithStrict())
	assert.ErrorIs(t, err, edgelist.ErrPartialEdge)
}

func TestRead_Malformed(t *testing.T) {
	_, err := edgelist.Read(strings.NewReader("0 1\n1 x"))
	require.ErrorIs(t, err, edgelist.ErrMalformedToken)
	assert.Contains(t, err.Error(), `token 4 "x"`)

	_, err = edgelist.Read(strings.NewReader("0 1.5"))
	assert.ErrorIs(t, err, edgelist.ErrMalformedToken)
}

func TestReadGraph(t *testing.T) {
	g, err := edgelist.ReadGraph(strings.NewReader("0 1 1 2 2 0"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))

	g, err = edgelist.ReadGraph(strings.NewReader("0 1"), edgelist.WithGraphOptions(core.WithOrder(4)))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
}

func TestReadGraph_ConstructionErrors(t *testing.T) {
	cases := map[string]error{
		"0 -1":    core.ErrVertexOutOfRange,
		"0 1 2 2": core.ErrLoopNotAllowed,
		"0 1 1 0": core.ErrMultiEdgeNotAllowed,
	}
	for in, want := range cases {
		_, err := edgelist.ReadGraph(strings.NewReader(in))
		assert.ErrorIs(t, err, want, in)
	}

	g, err := edgelist.ReadGraph(strings.NewReader("0 1 1 0"), edgelist.WithGraphOptions(core.WithMultiEdges()))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestReadGraph_GappedIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gapped.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 4\n"), 0o600))

	l, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	_, err = l.Graph()
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "vertex 2 missing")

	_, err = edgelist.ReadGraph(strings.NewReader("0 2000000000"))
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	g, err := l.Graph(edgelist.WithGraphOptions(core.WithOrder(5)))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w3.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n2 3\n3 1\n0 1\n0 2\n0 3\n"), 0o600))

	l, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, l.Edges, 6)

	g, err := l.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.MaxDegree())

	_, err = edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0 z"), 0o600))
	_, err = edgelist.ReadFile(bad)
	assert.ErrorIs(t, err, edgelist.ErrMalformedToken)
	assert.Contains(t, err.Error(), "bad.txt")
}
