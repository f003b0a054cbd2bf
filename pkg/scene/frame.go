package scene

import (
	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial"
	"github.com/matzehuels/mindwheel/pkg/radial/view"
)

// Options controls frame building. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	Curved        bool    // cubic Bezier links instead of straight segments
	BezierSamples int     // segments per curved link
	RadiusStep    float64 // must match the layout pass, shapes control points

	EndpointRadius float64 // world radius of link endpoint discs

	LabelScale      float64 // world scaling for glyph units
	LabelPad        float64 // anchor offset past the node tip
	LeafOnly        bool    // suppress labels of non-leaf, non-root nodes
	ConstScreenSize bool    // divide label scale by zoom for fixed pixel size
}

// DefaultOptions returns the stock frame options: curved links, 28
// samples, labels everywhere at fixed world scale.
func DefaultOptions() Options {
	return Options{
		Curved:         true,
		BezierSamples:  DefaultBezierSamples,
		RadiusStep:     radial.DefaultRadiusStep,
		EndpointRadius: DefaultEndpointRadius,
		LabelScale:     DefaultLabelScale,
		LabelPad:       DefaultLabelPad,
	}
}

// Frame is one redraw's worth of drawable geometry, in emit order. Links
// and discs come from a preorder edge walk; labels from a preorder node
// walk with the root first. Backends draw links, then discs, then labels.
type Frame struct {
	Links  []Polyline
	Discs  []Disc
	Labels []Label
}

// Build assembles the frame for the current view. The tree must have been
// laid out (pkg/radial) with the same radius step as opts.RadiusStep.
func Build(t *mindmap.Tree, v *view.View, opts Options) Frame {
	var f Frame
	if t.Len() == 0 {
		return f
	}
	if opts.BezierSamples <= 0 {
		opts.BezierSamples = DefaultBezierSamples
	}

	buildEdges(t, t.Root(), v, opts, &f)
	buildLabels(t, t.Root(), v, opts, &f)
	return f
}

// buildEdges emits one polyline and two endpoint discs per parent→child
// edge, in preorder. Discs repeat at shared endpoints on purpose: each
// edge anchors its own ends, independent of line width and antialiasing.
func buildEdges(t *mindmap.Tree, i int, v *view.View, opts Options, f *Frame) {
	parent := t.Node(i)
	for _, c := range parent.Children {
		child := t.Node(c)

		if opts.Curved {
			f.Links = append(f.Links, shapeCurved(parent, child, opts.RadiusStep, opts.BezierSamples))
		} else {
			f.Links = append(f.Links, shapeStraight(parent, child))
		}

		f.Discs = append(f.Discs,
			Disc{Center: Point{X: parent.X, Y: parent.Y}, Radius: opts.EndpointRadius},
			Disc{Center: Point{X: child.X, Y: child.Y}, Radius: opts.EndpointRadius},
		)

		buildEdges(t, c, v, opts, f)
	}
}

func buildLabels(t *mindmap.Tree, i int, v *view.View, opts Options, f *Frame) {
	n := t.Node(i)

	scale := opts.LabelScale
	if opts.ConstScreenSize {
		scale /= v.Zoom
	}

	if i == t.Root() {
		f.Labels = append(f.Labels, rootLabel(n, v, scale, opts.LabelPad))
	} else if !opts.LeafOnly || n.IsLeaf() {
		f.Labels = append(f.Labels, labelFor(n, v, scale, opts.LabelPad))
	}

	for _, c := range n.Children {
		buildLabels(t, c, v, opts, f)
	}
}
