// Package scene turns a laid-out mind map tree plus the current camera
// state into drawable primitives: link polylines, endpoint discs and label
// placement instructions. Building a frame is O(number of nodes) and runs
// on every redraw; the render backends in pkg/render consume frames
// without touching the tree.
package scene

import "math"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// polar returns the cartesian point at the given radius along angle a.
func polar(r, a float64) Point {
	return Point{X: math.Cos(a) * r, Y: math.Sin(a) * r}
}

// bezier3 evaluates a cubic Bezier with control polygon p0..p3 at
// parameter t. t=0 yields p0 exactly and t=1 yields p3 exactly.
func bezier3(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}
