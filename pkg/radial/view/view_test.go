package view

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestZoomSteps(t *testing.T) {
	v := New()

	v.ZoomIn()
	if !near(v.Zoom, ZoomStep) {
		t.Errorf("Zoom after one step = %v, want %v", v.Zoom, ZoomStep)
	}

	// Zoom-out is the exact reciprocal, so the pair cancels.
	v.ZoomOut()
	if !near(v.Zoom, 1.0) {
		t.Errorf("Zoom after in+out = %v, want 1.0", v.Zoom)
	}
}

func TestZoomClamps(t *testing.T) {
	v := New()
	for i := 0; i < 100; i++ {
		v.ZoomIn()
	}
	if v.Zoom != v.ZoomMax {
		t.Errorf("Zoom = %v, want clamp at %v", v.Zoom, v.ZoomMax)
	}

	for i := 0; i < 100; i++ {
		v.ZoomOut()
	}
	if v.Zoom != v.ZoomMin {
		t.Errorf("Zoom = %v, want clamp at %v", v.Zoom, v.ZoomMin)
	}
}

func TestVisibleHalfHeight(t *testing.T) {
	v := New()
	if !near(v.VisibleHalfHeight(), DefaultBaseHalfHeight) {
		t.Errorf("half height at zoom 1 = %v, want %v", v.VisibleHalfHeight(), DefaultBaseHalfHeight)
	}

	v.Zoom = 2
	if !near(v.VisibleHalfHeight(), DefaultBaseHalfHeight/2) {
		t.Errorf("half height at zoom 2 = %v, want %v", v.VisibleHalfHeight(), DefaultBaseHalfHeight/2)
	}
}

func TestRotateWraps(t *testing.T) {
	tests := []struct {
		name  string
		turns []float64
		want  float64
	}{
		{"simple", []float64{90}, 90},
		{"full circle", []float64{360}, 0},
		{"past full", []float64{350, 20}, 10},
		{"negative", []float64{-90}, 270},
		{"multiple wraps", []float64{720 + 45}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			for _, d := range tt.turns {
				v.Rotate(d)
			}
			if !near(v.RotationDeg, tt.want) {
				t.Errorf("RotationDeg = %v, want %v", v.RotationDeg, tt.want)
			}
		})
	}
}

func TestWorldPerPixel(t *testing.T) {
	v := New()
	v.Zoom = 2

	// Visible half-height 200, so 400 world units over 900 pixels.
	got := v.WorldPerPixel(900)
	if !near(got, 400.0/900.0) {
		t.Errorf("WorldPerPixel = %v, want %v", got, 400.0/900.0)
	}

	// Degenerate viewport height must not divide by zero.
	if math.IsInf(v.WorldPerPixel(0), 0) {
		t.Error("WorldPerPixel(0) should not be infinite")
	}
}

func TestPanByPixels(t *testing.T) {
	v := New()
	v.Zoom = 2

	// A 10-pixel rightward drag at viewport height 900 moves the pan
	// against the drag by 10 * (400/900) world units; vertical drags
	// invert because screen Y points down.
	v.PanByPixels(10, 10, 900)

	wpp := 400.0 / 900.0
	if !near(v.PanX, -10*wpp) {
		t.Errorf("PanX = %v, want %v", v.PanX, -10*wpp)
	}
	if !near(v.PanY, 10*wpp) {
		t.Errorf("PanY = %v, want %v", v.PanY, 10*wpp)
	}
}

func TestDragLifecycle(t *testing.T) {
	v := New()

	// Motion without an active drag is a no-op.
	if v.Drag(50, 50, 900) {
		t.Error("Drag outside an active drag should report no change")
	}
	if v.PanX != 0 || v.PanY != 0 {
		t.Error("Drag outside an active drag should not pan")
	}

	v.StartDrag(100, 100)
	if !v.Dragging() {
		t.Error("Dragging should be true after StartDrag")
	}

	// The first motion pans by the delta from the press position.
	if !v.Drag(110, 100, 900) {
		t.Error("Drag with movement should report a change")
	}
	wpp := v.WorldPerPixel(900)
	if !near(v.PanX, -10*wpp) {
		t.Errorf("PanX = %v, want %v", v.PanX, -10*wpp)
	}

	// Zero-delta motion reports no change.
	if v.Drag(110, 100, 900) {
		t.Error("zero-delta Drag should report no change")
	}

	v.EndDrag()
	if v.Dragging() {
		t.Error("Dragging should be false after EndDrag")
	}
	if v.Drag(300, 300, 900) {
		t.Error("Drag after EndDrag should be a no-op")
	}
}

func TestWorldToScreenCenter(t *testing.T) {
	v := New()

	// The world origin lands on the viewport center.
	sx, sy := v.WorldToScreen(0, 0, 1000, 900)
	if !near(sx, 500) || !near(sy, 450) {
		t.Errorf("origin maps to (%v, %v), want (500, 450)", sx, sy)
	}
}

func TestWorldToScreenYInverts(t *testing.T) {
	v := New()

	// World +Y is up, screen +Y is down.
	_, sy := v.WorldToScreen(0, 100, 1000, 900)
	if sy >= 450 {
		t.Errorf("world +Y maps to screen y %v, want above center (< 450)", sy)
	}
}

func TestWorldToScreenPanThenRotate(t *testing.T) {
	v := New()
	v.PanX = 10
	v.Rotate(90)

	// Pan applies before rotation: the panned-to point (10, 0) becomes
	// the rotation center and stays put at the viewport center.
	sx, sy := v.WorldToScreen(10, 0, 1000, 900)
	if !near(sx, 500) || !near(sy, 450) {
		t.Errorf("pan target maps to (%v, %v), want (500, 450)", sx, sy)
	}

	// A point one unit to the right of the pan target rotates 90° CCW
	// in world space, ending up directly above the center on screen.
	ppw := 450.0 / v.VisibleHalfHeight()
	sx, sy = v.WorldToScreen(11, 0, 1000, 900)
	if !near(sx, 500) || !near(sy, 450-ppw) {
		t.Errorf("rotated point maps to (%v, %v), want (500, %v)", sx, sy, 450-ppw)
	}
}

func TestScreenToWorldInverse(t *testing.T) {
	v := New()
	v.Zoom = 1.5
	v.PanX = 20
	v.PanY = -5
	v.Rotate(30)

	points := [][2]float64{{0, 0}, {100, -50}, {-35, 35}, {7.5, 123}}
	for _, p := range points {
		sx, sy := v.WorldToScreen(p[0], p[1], 1000, 900)
		wx, wy := v.ScreenToWorld(sx, sy, 1000, 900)
		if !near(wx, p[0]) || !near(wy, p[1]) {
			t.Errorf("round trip of (%v, %v) = (%v, %v)", p[0], p[1], wx, wy)
		}
	}
}
