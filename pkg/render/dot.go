package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
)

// ToDOT exports a laid-out tree as Graphviz DOT with pinned radial
// positions, so neato reproduces the computed layout instead of inventing
// its own. Positions are world units scaled to Graphviz inches.
//
// The export walks edges in the same preorder as frame building, keeping
// output deterministic for a given tree.
func ToDOT(t *mindmap.Tree) string {
	// Graphviz pos units are inches at 72 dpi; world units map better to
	// points, so divide down to keep the drawing a sane physical size.
	const worldPerInch = 36.0

	var buf bytes.Buffer
	buf.WriteString("graph mindmap {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=plaintext, fontsize=11];\n")
	buf.WriteString("  edge [color=\"#73737390\"];\n")
	buf.WriteString("\n")

	if t.Len() == 0 {
		buf.WriteString("}\n")
		return buf.String()
	}

	t.Walk(t.Root(), func(i int, n *mindmap.Node) {
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.4f,%.4f!\"];\n",
			n.ID, n.Text, n.X/worldPerInch, n.Y/worldPerInch)
	})

	buf.WriteString("\n")
	t.Walk(t.Root(), func(i int, n *mindmap.Node) {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %q -- %q;\n", n.ID, t.Node(c).ID)
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render DOT: %w", err)
	}
	return buf.Bytes(), nil
}
