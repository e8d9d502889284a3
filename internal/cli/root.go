package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/config"
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) { version = v }

// NewRootCmd builds the command tree. Results are written to out and logs
// to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "lvlabel",
		Short:        "lvlabel enumerates graph labelings by backtracking",
		Long:         `lvlabel searches small graphs exhaustively for graceful and L(3,2,1) labelings, and enumerates subsets.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := charmlog.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(errOut, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")

	root.AddCommand(newSubsetsCmd())
	root.AddCommand(newGracefulCmd())
	root.AddCommand(newWheelCmd())
	root.AddCommand(newL321Cmd())

	return root
}

// Execute runs the lvlabel CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}
