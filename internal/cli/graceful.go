package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/graceful"
)

func newGracefulCmd() *cobra.Command {
	var (
		gf    graphFlags
		first bool
	)

	cmd := &cobra.Command{
		Use:   "graceful",
		Short: "Enumerate graceful labelings of an edge-list graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := gf.loadGraph(cmd)
			if err != nil {
				return err
			}

			opts := []backtrack.Option{backtrack.WithContext(ctx)}
			if first {
				opts = append(opts, backtrack.WithMode(backtrack.StopAtFirst))
			}

			prog := newProgress(logger)
			pr := &labelingPrinter{out: cmd.OutOrStdout()}
			res, err := graceful.ForEach(g, pr.sink(), opts...)
			if err != nil {
				logger.Warn("graceful search interrupted", "outcome", res.Outcome, "printed", pr.printed)
				return err
			}
			if pr.err != nil {
				return pr.err
			}
			prog.done("graceful search finished",
				"outcome", res.Outcome, "labelings", pr.printed,
				"nodes", res.Stats.Nodes, "rejected", res.Stats.Rejected)

			if !res.Found() {
				logger.Info("no graceful labeling", "order", g.Order(), "size", g.Size())
				return nil
			}

			return gf.writeGraphics(ctx, g, pr.first)
		},
	}
	gf.register(cmd)
	cmd.Flags().BoolVar(&first, "first", false, "stop after the first labeling")

	return cmd
}
