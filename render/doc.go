// Package render formats search results for people and for Graphviz.
//
// Text formats:
//
//	Labeling  [0,8,1,5,2]    (empty → [])
//	Subset    { 1 3 }        (empty → { })
//	Adjacency 0: 1 3         one line per vertex, neighbors in adjacency order
//
// Graph formats:
//
//	ToDOT     undirected DOT with vertex labels and induced edge differences.
//	RenderSVG DOT → SVG through github.com/goccy/go-graphviz.
package render
