package scene

import "github.com/matzehuels/mindwheel/pkg/mindmap"

// Link shaping defaults, in world units unless noted.
const (
	// DefaultBezierSamples is the number of segments per curved link.
	DefaultBezierSamples = 28

	// DefaultEndpointRadius is the disc radius marking link endpoints.
	DefaultEndpointRadius = 0.75

	// controlOffset is the fraction of the radius step by which Bezier
	// control points sit outward from the parent and inward from the
	// child, keeping curves tangent to the radial direction at both ends.
	controlOffset = 0.55
)

// Polyline is a connected sequence of world-space points. Straight links
// have exactly two points; curved links carry samples+1 points.
type Polyline struct {
	Points []Point
}

// Disc is a small filled circle anchoring a link endpoint.
type Disc struct {
	Center Point
	Radius float64
}

// shapeStraight produces the two-point segment between parent and child.
func shapeStraight(parent, child *mindmap.Node) Polyline {
	return Polyline{Points: []Point{
		{X: parent.X, Y: parent.Y},
		{X: child.X, Y: child.Y},
	}}
}

// shapeCurved produces a sampled cubic Bezier between parent and child.
// The control points lie on the radial rays through each node's angle,
// offset by controlOffset of the radius step: outward from the parent,
// inward from the child. This fans curves out like spokes instead of
// cutting corners across rings.
func shapeCurved(parent, child *mindmap.Node, radiusStep float64, samples int) Polyline {
	p0 := Point{X: parent.X, Y: parent.Y}
	p3 := Point{X: child.X, Y: child.Y}
	p1 := polar(parent.Radius+controlOffset*radiusStep, parent.Angle)
	p2 := polar(child.Radius-controlOffset*radiusStep, child.Angle)

	pts := make([]Point, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		pts[i] = bezier3(p0, p1, p2, p3, t)
	}
	return Polyline{Points: pts}
}
