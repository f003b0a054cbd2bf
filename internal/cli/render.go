package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindwheel/pkg/cache"
	"github.com/matzehuels/mindwheel/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file path (or base path for multiple formats)
	formats     []string
	width       int
	height      int
	radiusStep  float64
	straight    bool    // straight segments instead of Bezier curves
	samples     int     // segments per curved link
	leafOnly    bool    // label leaves (and the root) only
	constScale  bool    // constant on-screen label size
	zoom        float64
	rotation    float64 // degrees
	panX, panY  float64 // world units
	refresh     bool    // bypass the artifact cache
	noCache     bool    // disable the cache entirely
}

// newRenderCmd creates the render command for generating static output.
// It shares the camera model with the interactive viewer, so a view found
// interactively can be reproduced exactly via --zoom/--rotation/--pan-*.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		zoom: 1.0,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a mind map to SVG, PNG, DOT or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, dot-svg, dot-png, json (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 1000, "viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 900, "viewport height in pixels")
	cmd.Flags().Float64Var(&opts.radiusStep, "radius-step", 0, "world distance per depth ring")
	cmd.Flags().BoolVar(&opts.straight, "straight", false, "straight links instead of Bezier curves")
	cmd.Flags().IntVar(&opts.samples, "samples", 0, "segments per curved link")
	cmd.Flags().BoolVarP(&opts.leafOnly, "leaves-only", "l", false, "label leaf nodes only")
	cmd.Flags().BoolVar(&opts.constScale, "const-scale", false, "constant on-screen label size")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", 1.0, "zoom level")
	cmd.Flags().Float64Var(&opts.rotation, "rotation", 0, "view rotation in degrees")
	cmd.Flags().Float64Var(&opts.panX, "pan-x", 0, "horizontal pan in world units")
	cmd.Flags().Float64Var(&opts.panY, "pan-y", 0, "vertical pan in world units")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !pipeline.ValidFormats[f] {
			return fmt.Errorf("unsupported format %q (valid: svg, png, dot, dot-svg, dot-png, json)", f)
		}
	}
	return nil
}

func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if opts.radiusStep <= 0 {
		opts.radiusStep = cfg.Layout.RadiusStep
	}
	if opts.samples <= 0 {
		opts.samples = cfg.Layout.BezierSamples
	}

	c, err := openCache(opts.noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	runner := pipeline.NewRunner(c, logger)

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:           input,
		RadiusStep:      opts.radiusStep,
		Curved:          !opts.straight && cfg.Layout.CurvedLinks,
		BezierSamples:   opts.samples,
		LeafOnly:        opts.leafOnly || cfg.Labels.LeavesOnly,
		ConstScreenSize: opts.constScale || cfg.Labels.ConstScreenSize,
		Zoom:            opts.zoom,
		RotationDeg:     opts.rotation,
		PanX:            opts.panX,
		PanY:            opts.panY,
		Width:           opts.width,
		Height:          opts.height,
		Formats:         opts.formats,
		Refresh:         opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s) for %d nodes", len(result.Artifacts), result.Tree.Len()))

	return writeArtifacts(cmd, input, opts, result.Artifacts)
}

// writeArtifacts puts rendered bytes where they belong: a single format
// goes to --output (or stdout when unset), multiple formats fan out to
// "<base>.<format>" files.
func writeArtifacts(cmd *cobra.Command, input string, opts *renderOpts, artifacts map[string][]byte) error {
	if len(opts.formats) == 1 {
		data := artifacts[opts.formats[0]]
		if opts.output == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(opts.output, data, 0644)
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, format := range opts.formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return err
		}
		loggerFromContext(cmd.Context()).Info("wrote artifact", "path", path)
	}
	return nil
}

// openCache returns the file-backed artifact cache, or the null cache
// when caching is disabled or the cache directory is unavailable.
func openCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
