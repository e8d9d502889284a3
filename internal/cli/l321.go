package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/l321"
	"github.com/katalvlaran/lvlabel/render"
)

func newL321Cmd() *cobra.Command {
	var (
		gf       graphFlags
		maxLabel int
		minSpan  bool
		maxBound int
	)

	cmd := &cobra.Command{
		Use:   "l321",
		Short: "L(3,2,1) labelings: all up to --max-label, or a minimum-span one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx).L321
			if !cmd.Flags().Changed("max-label") {
				maxLabel = cfg.MaxLabel
			}
			if !cmd.Flags().Changed("min-span") {
				minSpan = cfg.MinSpan
			}
			if !cmd.Flags().Changed("max-bound") {
				maxBound = cfg.MaxBound
			}

			g, err := gf.loadGraph(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			prog := newProgress(logger)

			if minSpan {
				opts := []l321.SpanOption{
					l321.WithSearchOptions(backtrack.WithContext(ctx)),
					l321.WithOnAttempt(func(bound int, found bool) {
						logger.Debug("span attempt", "bound", bound, "found", found)
					}),
				}
				if maxBound > 0 {
					opts = append(opts, l321.WithMaxBound(maxBound))
				}
				res, err := l321.MinSpan(g, opts...)
				if err != nil {
					return err
				}
				prog.done("minimum span found", "span", res.Span, "bound", res.Bound, "tried", res.Tried, "nodes", res.Stats.Nodes)
				if _, err := fmt.Fprintf(out, "span = %d (bound %d)\n%s\n", res.Span, res.Bound, render.Labeling(res.Labeling)); err != nil {
					return err
				}
				return gf.writeGraphics(ctx, g, res.Labeling)
			}

			pr := &labelingPrinter{out: out}
			res, err := l321.Enumerate(g, maxLabel, pr.sink(), backtrack.WithContext(ctx))
			if err != nil {
				logger.Warn("l321 enumeration interrupted", "outcome", res.Outcome, "printed", pr.printed)
				return err
			}
			if pr.err != nil {
				return pr.err
			}
			prog.done("l321 enumeration finished", "maxLabel", maxLabel, "labelings", pr.printed, "nodes", res.Stats.Nodes)
			if !res.Found() {
				logger.Info("no L(3,2,1) labeling within bound", "maxLabel", maxLabel)
				return nil
			}
			return gf.writeGraphics(ctx, g, pr.first)
		},
	}
	gf.register(cmd)
	cmd.Flags().IntVarP(&maxLabel, "max-label", "m", 7, "largest label in exhaustive mode")
	cmd.Flags().BoolVar(&minSpan, "min-span", false, "search for a minimum-span labeling instead")
	cmd.Flags().IntVar(&maxBound, "max-bound", 0, "cap on the min-span bound (0 = none)")

	return cmd
}
