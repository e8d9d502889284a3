package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/config"
	"github.com/katalvlaran/lvlabel/core"
	"github.com/katalvlaran/lvlabel/edgelist"
	"github.com/katalvlaran/lvlabel/render"
)

// graphFlags are shared by commands that read an edge list.
type graphFlags struct {
	input     string
	adjacency bool
	dot       string
	svg       string
}

func (f *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", `edge-list file ("-" for stdin; default from config)`)
	cmd.Flags().BoolVar(&f.adjacency, "adjacency", false, "print the adjacency list before searching")
	cmd.Flags().StringVar(&f.dot, "dot", "", "write the first labeling as Graphviz DOT to this file")
	cmd.Flags().StringVar(&f.svg, "svg", "", "render the first labeling as SVG to this file")
}

// loadGraph reads the edge list selected by flags or config.
func (f *graphFlags) loadGraph(cmd *cobra.Command) (*core.Graph, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx).Graph

	path := f.input
	if path == "" {
		path = cfg.Path
	}

	opts := edgeListOptions(cfg)
	opts = append(opts, edgelist.WithOnTruncated(func(v int) {
		logger.Warn("dropped trailing unpaired vertex", "vertex", v)
	}))

	var (
		l   *edgelist.List
		err error
	)
	if path == "-" || path == "" {
		l, err = edgelist.Read(cmd.InOrStdin(), opts...)
	} else {
		l, err = edgelist.ReadFile(path, opts...)
	}
	if err != nil {
		return nil, err
	}

	g, err := l.Graph(opts...)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	logger.Debug("graph loaded", "source", path,
		"order", st.Order, "size", st.Size,
		"minDegree", st.MinDegree, "maxDegree", st.MaxDegree,
		"isolated", st.Isolated, "parallel", st.HasParallel)

	if f.adjacency {
		if _, err := io.WriteString(cmd.OutOrStdout(), render.AdjacencyList(g)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// labelingPrinter writes each labeling as a line and keeps the first one
// for graphics output. The first write error stops further writes.
type labelingPrinter struct {
	out     io.Writer
	first   []int
	printed int
	err     error
}

func (p *labelingPrinter) sink() backtrack.Sink {
	write := func(a backtrack.Assignment) {
		if p.first == nil {
			p.first = a.Clone()
		}
		if p.err == nil {
			_, p.err = io.WriteString(p.out, render.Labeling(a)+"\n")
		}
	}

	return backtrack.Tee(write, backtrack.Count(&p.printed))
}

func edgeListOptions(cfg config.GraphConfig) []edgelist.Option {
	var opts []edgelist.Option
	if cfg.Strict {
		opts = append(opts, edgelist.WithStrict())
	}
	if cfg.MultiEdges {
		opts = append(opts, edgelist.WithGraphOptions(core.WithMultiEdges()))
	}

	return opts
}

// writeGraphics writes DOT and/or SVG renderings of labeling when requested.
func (f *graphFlags) writeGraphics(ctx context.Context, g *core.Graph, labeling []int) error {
	if f.dot == "" && f.svg == "" {
		return nil
	}
	logger := loggerFromContext(ctx)
	dot := render.ToDOT(g, labeling, render.Options{})

	if f.dot != "" {
		if err := os.WriteFile(f.dot, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		logger.Info("wrote DOT", "path", f.dot)
	}
	if f.svg != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.svg, svg, 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		logger.Info("wrote SVG", "path", f.svg)
	}

	return nil
}
