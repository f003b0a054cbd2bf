package render

import (
	"bytes"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mindwheel/pkg/fonts"
	"github.com/matzehuels/mindwheel/pkg/radial/view"
	"github.com/matzehuels/mindwheel/pkg/scene"
)

// WritePNG rasterizes the frame to a PNG image.
//
// Links and discs draw in world units under the scene transform stack.
// Labels draw in screen space instead: rasterized glyphs stay crisp when
// placed at their final size, so the label's scene-relative angle is
// converted back to its absolute screen angle and the anchor is projected
// through the view.
func WritePNG(w io.Writer, f scene.Frame, v *view.View, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor(colorBackground)
	dc.Clear()

	ppw := float64(height) / 2 / v.VisibleHalfHeight()

	// Scene transform: pan, then rotate about the screen center, then
	// project. gg applies these to points in reverse call order.
	dc.Push()
	dc.Translate(float64(width)/2, float64(height)/2)
	dc.Scale(ppw, -ppw)
	dc.Rotate(v.RotationRad())
	dc.Translate(-v.PanX, -v.PanY)

	dc.SetRGBA(0.45, 0.45, 0.45, linkOpacity)
	dc.SetLineWidth(1 / ppw)
	for _, link := range f.Links {
		for i, p := range link.Points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.Stroke()
	}

	dc.SetRGBA(0.30, 0.30, 0.30, discOpacity)
	for _, d := range f.Discs {
		dc.DrawCircle(d.Center.X, d.Center.Y, d.Radius)
		dc.Fill()
	}
	dc.Pop()

	drawLabels(dc, f, v, width, height, ppw)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// drawLabels renders labels at their projected screen positions. Screen Y
// grows downward, so an on-screen counterclockwise angle needs a negated
// canvas rotation.
func drawLabels(dc *gg.Context, f scene.Frame, v *view.View, width, height int, ppw float64) {
	if len(f.Labels) == 0 {
		return
	}

	// All labels in a frame share one scale, so one face load suffices.
	// Errors leave gg's built-in face active.
	size := math.Max(1, f.Labels[0].Scale*scene.StrokeHeight*ppw)
	if path, err := fonts.Find(); err == nil {
		_ = dc.LoadFontFace(path, size)
	}

	// Alignment offsets measure through the same font that backs the
	// face, so End anchors land on the glyph edge; headless environments
	// fall back to fixed advances.
	m := fonts.BestMeasurer()

	dc.SetHexColor(colorLabel)
	for _, l := range f.Labels {
		sx, sy := v.WorldToScreen(l.Anchor.X, l.Anchor.Y, width, height)
		screenDeg := l.AngleDeg + v.RotationDeg

		dc.Push()
		dc.Translate(sx, sy)
		dc.Rotate(-screenDeg * (math.Pi / 180))
		dc.DrawString(l.Text, labelOffset(l, m, ppw), 0)
		dc.Pop()
	}
}

// labelOffset converts a label's native-unit alignment shift to pixels:
// native units scale to world via Label.Scale, world to pixels via ppw.
func labelOffset(l scene.Label, m scene.Measurer, ppw float64) float64 {
	return l.Offset(m) * l.Scale * ppw
}
