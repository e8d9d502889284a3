package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvlabel/core"
)

// Unlabeled marks a vertex without a label in ToDOT input.
const Unlabeled = -1

// Options configures DOT output.
type Options struct {
	// ShowIDs prefixes each vertex label with its id ("v2: 5").
	// Unlabeled vertices always show their id.
	ShowIDs bool
}

// ToDOT converts g to undirected Graphviz DOT. Entries of labeling become
// vertex labels; an edge whose endpoints are both labeled is annotated with
// the absolute difference. labeling may be shorter than g.Order() or hold
// Unlabeled entries.
func ToDOT(g *core.Graph, labeling []int, opts Options) string {
	label := func(v int) (int, bool) {
		if v < len(labeling) && labeling[v] != Unlabeled {
			return labeling[v], true
		}
		return 0, false
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	for v := 0; v < g.Order(); v++ {
		text := fmt.Sprintf("v%d", v)
		if l, ok := label(v); ok {
			text = fmt.Sprint(l)
			if opts.ShowIDs {
				text = fmt.Sprintf("v%d: %d", v, l)
			}
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v, text)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		lu, okU := label(e.U)
		lv, okV := label(e.V)
		if okU && okV {
			d := lu - lv
			if d < 0 {
				d = -d
			}
			fmt.Fprintf(&buf, "  %d -- %d [label=\"%d\"];\n", e.U, e.V, d)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
