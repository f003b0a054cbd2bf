package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial"
)

// newViewCmd creates the view command: the interactive terminal viewer.
func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Explore a mind map interactively in the terminal",
		Long: `View opens an interactive radial rendering of the mind map.

Controls:
  +/-        zoom in/out
  arrows/hjkl  pan
  r          toggle rotation animation
  [ / ]      rotation speed down/up
  c          toggle curved links
  L          toggle leaf-only labels
  t          toggle constant screen-size labels
  q/esc      quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			t, err := mindmap.ParseFile(args[0])
			if err != nil {
				return err
			}
			radial.Layout(t, radial.Options{RadiusStep: cfg.Layout.RadiusStep})

			model := newViewerModel(t, cfg, args[0])
			p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}

	return cmd
}
