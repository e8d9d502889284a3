package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/builder"
	"github.com/katalvlaran/lvlabel/graceful"
	"github.com/katalvlaran/lvlabel/render"
)

func newWheelCmd() *cobra.Command {
	var (
		n   int
		all bool
		gf  graphFlags
	)

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Graceful labelings of the wheel W_n up to mirror symmetry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("rim") {
				n = configFromContext(ctx).Wheel.N
			}

			prog := newProgress(logger)
			rep, err := graceful.Wheel(n, backtrack.WithContext(ctx))
			if err != nil {
				return err
			}
			prog.done("wheel search finished", "n", n, "found", len(rep.All), "distinct", rep.Total(), "nodes", rep.Stats.Nodes)

			rows := rep.Distinct
			if all {
				rows = rep.All
			}
			out := cmd.OutOrStdout()
			if err := render.WriteLabelings(out, rows); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "total = %d labelings\n", rep.Total()); err != nil {
				return err
			}

			if rep.Total() == 0 {
				return nil
			}
			g, err := builder.NewWheel(n)
			if err != nil {
				return err
			}
			return gf.writeGraphics(ctx, g, rep.Distinct[0])
		},
	}
	cmd.Flags().IntVarP(&n, "rim", "n", 4, "rim length (≥ 3)")
	cmd.Flags().BoolVar(&all, "all", false, "print every labeling, including mirror duplicates")
	cmd.Flags().StringVar(&gf.dot, "dot", "", "write the first labeling as Graphviz DOT to this file")
	cmd.Flags().StringVar(&gf.svg, "svg", "", "render the first labeling as SVG to this file")

	return cmd
}
