package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mindwheel/pkg/cache"
)

const sampleMap = `<map version="1.0.1">
<node ID="root" TEXT="Root">
  <node ID="a" TEXT="A">
    <node ID="a1" TEXT="A1"/>
  </node>
  <node ID="b" TEXT="B"/>
</node>
</map>`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.mm")
	if err := os.WriteFile(path, []byte(sampleMap), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestExecuteSVG(t *testing.T) {
	r := NewRunner(nil, nil)
	path := writeSample(t)

	result, err := r.Execute(context.Background(), Options{Input: path, Curved: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Tree.Len() != 4 {
		t.Errorf("tree has %d nodes, want 4", result.Tree.Len())
	}
	if len(result.Frame.Links) != 3 {
		t.Errorf("frame has %d links, want 3", len(result.Frame.Links))
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("missing SVG artifact")
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("SVG artifact is not an SVG document")
	}
}

func TestExecuteMultipleFormats(t *testing.T) {
	r := NewRunner(nil, nil)
	path := writeSample(t)

	result, err := r.Execute(context.Background(), Options{
		Input:   path,
		Formats: []string{FormatSVG, FormatDOT, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(result.Artifacts) != 3 {
		t.Fatalf("artifacts = %d, want 3", len(result.Artifacts))
	}
	if !strings.Contains(string(result.Artifacts[FormatDOT]), "graph mindmap") {
		t.Error("DOT artifact is not a DOT graph")
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), `"nodes"`) {
		t.Error("JSON artifact has no node list")
	}
}

func TestExecuteGraphvizFormats(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}

	r := NewRunner(nil, nil)
	path := writeSample(t)

	result, err := r.Execute(context.Background(), Options{
		Input:   path,
		Formats: []string{FormatDOTSVG},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	svg := string(result.Artifacts[FormatDOTSVG])
	if !strings.Contains(svg, "<svg") {
		t.Error("dot-svg artifact is not an SVG document")
	}
	// Pinned neato positions survive the graphviz pass.
	for _, id := range []string{"root", "a", "a1", "b"} {
		if !strings.Contains(svg, ">"+id+"<") {
			t.Errorf("missing node %s in graphviz output", id)
		}
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	r := NewRunner(nil, nil)
	path := writeSample(t)

	_, err := r.Execute(context.Background(), Options{
		Input:   path,
		Formats: []string{"tiff"},
	})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Execute error = %v, want unsupported format", err)
	}
}

func TestExecuteMissingInput(t *testing.T) {
	r := NewRunner(nil, nil)

	_, err := r.Execute(context.Background(), Options{Input: "/does/not/exist.mm"})
	if err == nil {
		t.Error("Execute should fail on a missing input file")
	}
}

func TestRenderUsesArtifactCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil)
	path := writeSample(t)
	ctx := context.Background()

	opts := Options{Input: path}
	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	// The second run serves the identical artifact from the cache.
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from the original")
	}

	// Different camera options produce a fresh artifact.
	rotated, err := r.Execute(ctx, Options{Input: path, RotationDeg: 90})
	if err != nil {
		t.Fatalf("rotated Execute: %v", err)
	}
	if string(first.Artifacts[FormatSVG]) == string(rotated.Artifacts[FormatSVG]) {
		t.Error("rotated render should differ from the cached original")
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.withDefaults()

	if o.RadiusStep != 35 {
		t.Errorf("RadiusStep = %v, want 35", o.RadiusStep)
	}
	if o.BezierSamples != 28 {
		t.Errorf("BezierSamples = %v, want 28", o.BezierSamples)
	}
	if o.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", o.Zoom)
	}
	if o.Width != 1000 || o.Height != 900 {
		t.Errorf("viewport = %dx%d, want 1000x900", o.Width, o.Height)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
}

func TestOptionsView(t *testing.T) {
	v := Options{Zoom: 2, RotationDeg: 450, PanX: 5, PanY: -5}.View()

	if v.Zoom != 2 {
		t.Errorf("Zoom = %v, want 2", v.Zoom)
	}
	// Rotation wraps into [0, 360).
	if v.RotationDeg != 90 {
		t.Errorf("RotationDeg = %v, want 90", v.RotationDeg)
	}
	if v.PanX != 5 || v.PanY != -5 {
		t.Errorf("pan = (%v, %v), want (5, -5)", v.PanX, v.PanY)
	}

	// Out-of-range zoom clamps to the view bounds.
	v = Options{Zoom: 1000}.View()
	if v.Zoom != v.ZoomMax {
		t.Errorf("Zoom = %v, want clamp at %v", v.Zoom, v.ZoomMax)
	}
}
