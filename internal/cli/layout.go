package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mwio "github.com/matzehuels/mindwheel/pkg/io"
	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial"
)

// newLayoutCmd creates the layout command: parse a FreeMind document, run
// the radial layout pass, and export the computed coordinates as JSON.
func newLayoutCmd() *cobra.Command {
	var (
		output     string
		radiusStep float64
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute radial coordinates and export them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if radiusStep <= 0 {
				radiusStep = cfg.Layout.RadiusStep
			}

			prog := newProgress(logger)
			t, err := mindmap.ParseFile(args[0])
			if err != nil {
				return err
			}
			radial.Layout(t, radial.Options{RadiusStep: radiusStep})
			prog.done(fmt.Sprintf("Laid out %d nodes (%d leaves)", t.Len(), t.Leaves()))

			if output == "" {
				return mwio.WriteJSON(t, radiusStep, os.Stdout)
			}
			if err := mwio.ExportJSON(t, radiusStep, output); err != nil {
				return err
			}
			logger.Info("wrote layout", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Float64Var(&radiusStep, "radius-step", 0, "world distance per depth ring")

	return cmd
}
