package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mindwheel/pkg/cache"
	mwio "github.com/matzehuels/mindwheel/pkg/io"
	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/observability"
	"github.com/matzehuels/mindwheel/pkg/radial"
	"github.com/matzehuels/mindwheel/pkg/render"
	"github.com/matzehuels/mindwheel/pkg/scene"
)

// artifactTTL bounds how long rendered output stays cached. Renders are
// cheap enough that stale entries are not worth chasing.
const artifactTTL = 24 * time.Hour

// Result carries everything a pipeline run produced.
type Result struct {
	Tree      *mindmap.Tree
	Frame     scene.Frame
	Artifacts map[string][]byte // format → rendered bytes
}

// Runner executes pipeline stages with shared cache and logging.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables artifact
// caching; a nil logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Parse reads and parses the FreeMind document at path. It returns the
// tree along with the document's content hash, which keys the artifact
// cache.
func (r *Runner) Parse(ctx context.Context, path string) (*mindmap.Tree, string, error) {
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, path)

	data, err := os.ReadFile(path)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, path, 0, time.Since(start), err)
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	t, err := mindmap.Parse(bytes.NewReader(data))
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, path, 0, time.Since(start), err)
		return nil, "", fmt.Errorf("parse %s: %w", path, err)
	}

	observability.Pipeline().OnParseComplete(ctx, path, t.Len(), time.Since(start), nil)
	r.logger.Debug("parsed document", "path", path, "nodes", t.Len())
	return t, cache.Hash(data), nil
}

// ComputeLayout runs the radial layout pass over the tree.
func (r *Runner) ComputeLayout(ctx context.Context, t *mindmap.Tree, radiusStep float64) {
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, t.Len())

	radial.Layout(t, radial.Options{RadiusStep: radiusStep})

	observability.Pipeline().OnLayoutComplete(ctx, t.Len(), time.Since(start), nil)
	r.logger.Debug("layout complete", "nodes", t.Len(), "radius_step", radiusStep)
}

// BuildFrame combines the laid-out tree with the camera described by opts
// into drawable primitives.
func (r *Runner) BuildFrame(t *mindmap.Tree, opts Options) scene.Frame {
	opts = opts.withDefaults()
	return scene.Build(t, opts.View(), opts.FrameOptions())
}

// Render produces the requested formats for an already laid-out tree.
// Artifacts are cached under docHash + options unless opts.Refresh is set.
func (r *Runner) Render(ctx context.Context, t *mindmap.Tree, docHash string, opts Options) (map[string][]byte, error) {
	opts = opts.withDefaults()
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	frame := r.BuildFrame(t, opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if !ValidFormats[format] {
			err := fmt.Errorf("unsupported format %q", format)
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}

		key := cache.ArtifactKey(docHash, opts.artifactOpts(format))
		if !opts.Refresh && docHash != "" {
			if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				r.logger.Debug("artifact cache hit", "format", format)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := r.renderFormat(ctx, t, frame, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if docHash != "" {
			if err := r.cache.Set(ctx, key, data, artifactTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

func (r *Runner) renderFormat(ctx context.Context, t *mindmap.Tree, frame scene.Frame, format string, opts Options) ([]byte, error) {
	v := opts.View()
	var buf bytes.Buffer

	switch format {
	case FormatSVG:
		if err := render.WriteSVG(&buf, frame, v, opts.Width, opts.Height); err != nil {
			return nil, err
		}
	case FormatPNG:
		if err := render.WritePNG(&buf, frame, v, opts.Width, opts.Height); err != nil {
			return nil, err
		}
	case FormatDOT:
		buf.WriteString(render.ToDOT(t))
	case FormatDOTSVG:
		data, err := render.RenderDOTSVG(ctx, render.ToDOT(t))
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	case FormatDOTPNG:
		data, err := render.RenderDOTPNG(ctx, render.ToDOT(t))
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	case FormatJSON:
		if err := mwio.WriteJSON(t, opts.RadiusStep, &buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Execute runs the complete pipeline: parse, layout, frame, render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	t, docHash, err := r.Parse(ctx, opts.Input)
	if err != nil {
		return nil, err
	}

	r.ComputeLayout(ctx, t, opts.RadiusStep)

	artifacts, err := r.Render(ctx, t, docHash, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tree:      t,
		Frame:     r.BuildFrame(t, opts),
		Artifacts: artifacts,
	}, nil
}
