package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the ferro CLI and returns an error if any command
// fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// newRootCmd builds the ferro command tree. Logging defaults to info
// level; --verbose switches to debug.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "ferro",
		Short:        "ferro generates 2D SVG reinforcement drawings from 3D rebar models",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newBOMCmd())

	return root
}
