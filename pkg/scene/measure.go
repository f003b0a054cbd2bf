package scene

// Measurer reports text width as the sum of glyph advance widths in the
// font's native units, before the label scale is applied. Backends that
// align text themselves (SVG text-anchor) don't need one; the others use
// it to realize Start/Center/End offsets.
type Measurer interface {
	Width(s string) float64
}

// Stroke-font metrics used by the fallback measurer. These match the
// classic Hershey-derived vector font: a uniform advance of 104.76 units
// per glyph at a nominal height of 152.38 units.
const (
	StrokeAdvance = 104.76
	StrokeHeight  = 152.38
)

// FixedMeasurer assumes a uniform advance per glyph. It is the fallback
// for headless environments with no system font available, and the
// measurer of choice in tests because its widths are exact.
type FixedMeasurer struct {
	// Advance per glyph in native units. Zero means StrokeAdvance.
	Advance float64
}

// Width returns len(s) * advance, counting runes rather than bytes.
func (m FixedMeasurer) Width(s string) float64 {
	adv := m.Advance
	if adv == 0 {
		adv = StrokeAdvance
	}
	n := 0
	for range s {
		n++
	}
	return float64(n) * adv
}
