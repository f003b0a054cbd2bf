package scene

import (
	"math"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial/view"
)

// Label placement defaults.
const (
	// DefaultLabelScale is the world scaling applied to glyph units.
	DefaultLabelScale = 0.020

	// DefaultLabelPad is the world distance between a node tip and its
	// label anchor.
	DefaultLabelPad = 3.0
)

// Alignment anchors text along its baseline.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Label is a text placement instruction for the render backend.
//
// AngleDeg is relative to the already-rotated scene: the backend draws
// labels inside a space that the view's rotation has been applied to, so
// the desired absolute screen angle has the view rotation subtracted out.
type Label struct {
	Anchor   Point
	AngleDeg float64
	Scale    float64
	Align    Alignment
	Text     string
}

// Offset returns the baseline shift, in the measurer's native glyph
// units, that realizes the label's alignment: 0 for start, -w/2 for
// center, -w for end.
func (l Label) Offset(m Measurer) float64 {
	switch l.Align {
	case AlignCenter:
		return -0.5 * m.Width(l.Text)
	case AlignEnd:
		return -m.Width(l.Text)
	default:
		return 0
	}
}

// labelFor places the label for a non-root node.
//
// The anchor sits just past the node tip along its radial direction. The
// text baseline runs parallel to that direction; if the node's on-screen
// angle points into the left half of the screen (strictly negative
// cosine - an exactly vertical angle counts as right), the drawn angle
// flips by 180° and the alignment switches to end so glyphs never render
// upside-down and the anchor stays at the visual end nearest the node.
func labelFor(n *mindmap.Node, v *view.View, scale, pad float64) Label {
	// Radial unit vector; the origin falls back to pointing right.
	dx, dy := 1.0, 0.0
	if length := math.Hypot(n.X, n.Y); length > 1e-6 {
		dx, dy = n.X/length, n.Y/length
	}

	screenAngle := n.Angle + v.RotationRad()
	desiredDeg := screenAngle * (180 / math.Pi)
	align := AlignStart
	if math.Cos(screenAngle) < 0 {
		desiredDeg += 180
		align = AlignEnd
	}

	return Label{
		Anchor:   Point{X: n.X + dx*pad, Y: n.Y + dy*pad},
		AngleDeg: desiredDeg - v.RotationDeg,
		Scale:    scale,
		Align:    align,
		Text:     n.Text,
	}
}

// rootLabel places the root's label, which stays horizontal in screen
// space regardless of the view rotation: counter-rotating by the exact
// negative of the current rotation cancels the scene's own rotation.
func rootLabel(n *mindmap.Node, v *view.View, scale, pad float64) Label {
	return Label{
		Anchor:   Point{X: pad, Y: 0},
		AngleDeg: -v.RotationDeg,
		Scale:    scale,
		Align:    AlignStart,
		Text:     n.Text,
	}
}
