package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/backtrack"
	"github.com/katalvlaran/lvlabel/render"
	"github.com/katalvlaran/lvlabel/subset"
)

func newSubsetsCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "subsets",
		Short: "Enumerate every subset of {1..n}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("size") {
				n = configFromContext(ctx).Subsets.N
			}

			prog := newProgress(logger)
			out := cmd.OutOrStdout()
			var werr error
			res, err := subset.Generate(n, func(m []int) {
				if werr == nil {
					_, werr = out.Write([]byte(render.Subset(m) + "\n"))
				}
			}, backtrack.WithContext(ctx))
			if err != nil {
				return err
			}
			if werr != nil {
				return werr
			}
			prog.done("subsets enumerated", "n", n, "count", res.Stats.Solutions, "nodes", res.Stats.Nodes)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 3, "ground set size (0..50)")

	return cmd
}
