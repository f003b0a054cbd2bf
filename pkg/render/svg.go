// Package render draws scene frames with concrete backends: SVG
// (ajstarks/svgo), PNG (fogleman/gg) and Graphviz DOT (goccy/go-graphviz).
//
// Backends share the same camera model (see pkg/radial/view): the scene is
// panned first, then rotated about the screen center, then projected
// orthographically. SVG and PNG set that up as a transform stack and draw
// in world units; labels carry their own rotation relative to the already
// rotated scene.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/mindwheel/pkg/radial/view"
	"github.com/matzehuels/mindwheel/pkg/scene"
)

// Default viewport size in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 900
)

// Colors shared by the SVG and PNG backends, matching the interactive
// viewer's palette: faint grey links, darker endpoint discs, near-black
// labels on white.
const (
	colorBackground = "#ffffff"
	colorLink       = "#737373"
	colorDisc       = "#4d4d4d"
	colorLabel      = "#1a1a1a"

	linkOpacity = 0.55
	discOpacity = 0.95
)

var svgAnchors = map[scene.Alignment]string{
	scene.AlignStart:  "start",
	scene.AlignCenter: "middle",
	scene.AlignEnd:    "end",
}

// WriteSVG renders the frame as a standalone SVG document.
//
// The scene group applies, right to left: the pan translation, the view
// rotation, and the orthographic scale with a Y flip (SVG Y grows
// downward, world Y grows upward). Labels counter-flip with a local
// scale(1,-1) and lean on text-anchor for alignment, so no measurer is
// needed.
func WriteSVG(w io.Writer, f scene.Frame, v *view.View, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	canvas := svg.New(w)
	canvas.Start(float64(width), float64(height))
	canvas.Rect(0, 0, float64(width), float64(height), "fill:"+colorBackground)

	ppw := float64(height) / 2 / v.VisibleHalfHeight()
	canvas.Group(fmt.Sprintf(`transform="translate(%.4f,%.4f) scale(%.6f,%.6f) rotate(%.4f) translate(%.4f,%.4f)"`,
		float64(width)/2, float64(height)/2, ppw, -ppw, v.RotationDeg, -v.PanX, -v.PanY))

	linkStyle := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.2f;stroke-width:%.4f", colorLink, linkOpacity, 1/ppw)
	for _, link := range f.Links {
		xs := make([]float64, len(link.Points))
		ys := make([]float64, len(link.Points))
		for i, p := range link.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polyline(xs, ys, linkStyle)
	}

	discStyle := fmt.Sprintf("fill:%s;fill-opacity:%.2f", colorDisc, discOpacity)
	for _, d := range f.Discs {
		canvas.Circle(d.Center.X, d.Center.Y, d.Radius, discStyle)
	}

	for _, l := range f.Labels {
		size := l.Scale * scene.StrokeHeight
		canvas.Gtransform(fmt.Sprintf("translate(%.4f,%.4f) rotate(%.4f) scale(1,-1)", l.Anchor.X, l.Anchor.Y, l.AngleDeg))
		canvas.Text(0, 0, l.Text,
			fmt.Sprintf("fill:%s;font-size:%.4fpx;font-family:sans-serif;text-anchor:%s", colorLabel, size, svgAnchors[l.Align]))
		canvas.Gend()
	}

	canvas.Gend()
	canvas.End()
	return nil
}
