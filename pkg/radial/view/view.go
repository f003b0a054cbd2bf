// Package view holds the camera state for an interactive radial map
// session: zoom, pan and rotation, plus the mapping between world and
// screen coordinates.
//
// The camera semantics are: pan the world first, then spin it about the
// screen center. The world-to-screen mapping is an orthographic projection
// whose visible half-height is BaseHalfHeight / Zoom, composed with a
// translation by (-PanX, -PanY) and then a rotation by RotationDeg.
//
// A View has a single writer (the input handlers) and a single reader
// (the per-frame render step); it is not safe for concurrent use.
package view

import "math"

// Camera defaults and bounds.
const (
	DefaultBaseHalfHeight = 400.0 // visible world half-height at zoom 1
	DefaultZoomMin        = 0.1
	DefaultZoomMax        = 20.0

	// ZoomStep is the multiplicative factor per discrete zoom-in step.
	// Zoom-out uses the exact reciprocal, so in/out pairs cancel.
	ZoomStep = 1.1
)

// View is the zoom/pan/rotation state of a session.
type View struct {
	Zoom        float64 // positive scalar, clamped to [ZoomMin, ZoomMax]
	PanX, PanY  float64 // world-space offset
	RotationDeg float64 // wrapped to [0, 360)

	BaseHalfHeight float64
	ZoomMin        float64
	ZoomMax        float64

	dragging         bool
	lastPxX, lastPxY int
}

// New creates a view at zoom 1, centered on the origin, with default
// bounds.
func New() *View {
	return &View{
		Zoom:           1.0,
		BaseHalfHeight: DefaultBaseHalfHeight,
		ZoomMin:        DefaultZoomMin,
		ZoomMax:        DefaultZoomMax,
	}
}

// VisibleHalfHeight returns the world half-height currently visible.
func (v *View) VisibleHalfHeight() float64 {
	return v.BaseHalfHeight / v.Zoom
}

// ZoomIn applies one multiplicative zoom-in step, clamped to ZoomMax.
func (v *View) ZoomIn() {
	v.Zoom = math.Min(v.ZoomMax, v.Zoom*ZoomStep)
}

// ZoomOut applies one multiplicative zoom-out step, clamped to ZoomMin.
func (v *View) ZoomOut() {
	v.Zoom = math.Max(v.ZoomMin, v.Zoom/ZoomStep)
}

// RotationRad returns the current rotation in radians.
func (v *View) RotationRad() float64 {
	return v.RotationDeg * (math.Pi / 180)
}

// Rotate adds deg to the current rotation, wrapping into [0, 360).
func (v *View) Rotate(deg float64) {
	v.RotationDeg = wrapDeg(v.RotationDeg + deg)
}

func wrapDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// WorldPerPixel converts screen pixels to world units for the given
// viewport height. The viewport height is floored at 1 pixel so the
// conversion never divides by zero.
func (v *View) WorldPerPixel(viewportH int) float64 {
	return (2 * v.VisibleHalfHeight()) / float64(max(1, viewportH))
}

// PanByPixels shifts the pan offset by a screen-pixel delta. Horizontal
// drag moves the pan against the drag direction; vertical drag inverts
// sign because screen Y grows downward while world Y grows upward.
func (v *View) PanByPixels(dx, dy, viewportH int) {
	wpp := v.WorldPerPixel(viewportH)
	v.PanX -= float64(dx) * wpp
	v.PanY += float64(dy) * wpp
}

// StartDrag begins a pointer drag at the given pixel position.
func (v *View) StartDrag(x, y int) {
	v.dragging = true
	v.lastPxX, v.lastPxY = x, y
}

// Drag handles pointer motion. Motion outside an active drag is a no-op;
// during a drag it pans by the delta from the previous position and
// reports whether the view changed.
func (v *View) Drag(x, y, viewportH int) bool {
	if !v.dragging {
		return false
	}
	dx := x - v.lastPxX
	dy := y - v.lastPxY
	v.lastPxX, v.lastPxY = x, y
	v.PanByPixels(dx, dy, viewportH)
	return dx != 0 || dy != 0
}

// EndDrag ends an active pointer drag.
func (v *View) EndDrag() { v.dragging = false }

// Dragging reports whether a pointer drag is active.
func (v *View) Dragging() bool { return v.dragging }

// WorldToScreen maps a world position to pixel coordinates for a viewport
// of the given size. The scene transform (pan then rotate) is applied
// first, then the orthographic scale; pixel Y grows downward.
func (v *View) WorldToScreen(wx, wy float64, viewportW, viewportH int) (sx, sy float64) {
	x := wx - v.PanX
	y := wy - v.PanY

	rad := v.RotationRad()
	sin, cos := math.Sincos(rad)
	rx := x*cos - y*sin
	ry := x*sin + y*cos

	ppw := float64(max(1, viewportH)) / 2 / v.VisibleHalfHeight()
	sx = float64(viewportW)/2 + rx*ppw
	sy = float64(viewportH)/2 - ry*ppw
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen, used for pointer hit
// math.
func (v *View) ScreenToWorld(sx, sy float64, viewportW, viewportH int) (wx, wy float64) {
	ppw := float64(max(1, viewportH)) / 2 / v.VisibleHalfHeight()
	rx := (sx - float64(viewportW)/2) / ppw
	ry := (float64(viewportH)/2 - sy) / ppw

	rad := -v.RotationRad()
	sin, cos := math.Sincos(rad)
	x := rx*cos - ry*sin
	y := rx*sin + ry*cos

	return x + v.PanX, y + v.PanY
}
