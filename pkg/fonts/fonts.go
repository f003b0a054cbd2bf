// Package fonts locates and loads a system TrueType font for label
// measurement and raster text rendering.
//
// Nothing is embedded: the viewer runs wherever the user's desktop fonts
// live, so a lookup through the platform font directories is enough. In
// headless environments (CI, tests) callers fall back to the fixed-advance
// measurer in pkg/scene.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/mindwheel/pkg/scene"
)

// candidates are tried in order; the first one present on the system wins.
var candidates = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
}

var (
	loadOnce sync.Once
	loaded   *truetype.Font
	loadPath string
	loadErr  error
)

// Find returns the path of the first available candidate font.
func Find() (string, error) {
	for _, name := range candidates {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no usable TrueType font found (tried %v)", candidates)
}

// Load parses the first available candidate font. The result is cached;
// repeated calls return the same font and error.
func Load() (*truetype.Font, string, error) {
	loadOnce.Do(func() {
		loadPath, loadErr = Find()
		if loadErr != nil {
			return
		}
		var data []byte
		data, loadErr = os.ReadFile(loadPath)
		if loadErr != nil {
			return
		}
		loaded, loadErr = truetype.Parse(data)
	})
	return loaded, loadPath, loadErr
}

// Measurer measures text in the loaded font's native units (funits), so
// label alignment offsets match what the raster backend will draw.
type Measurer struct {
	font *truetype.Font
}

// NewMeasurer loads the system font and wraps it as a [scene.Measurer].
func NewMeasurer() (*Measurer, error) {
	f, _, err := Load()
	if err != nil {
		return nil, err
	}
	return &Measurer{font: f}, nil
}

// Width sums the advance widths of each glyph and normalizes the total
// to stroke-font units, the unit [scene.Label.Scale] multiplies, so the
// truetype and fixed-advance measurers are interchangeable. Missing
// glyphs map to the font's fallback index, matching how the rasterizer
// draws.
func (m *Measurer) Width(s string) float64 {
	upm := fixed.Int26_6(m.font.FUnitsPerEm())
	total := 0.0
	for _, r := range s {
		hm := m.font.HMetric(upm, m.font.Index(r))
		total += float64(hm.AdvanceWidth)
	}
	return total * scene.StrokeHeight / float64(upm)
}

// BestMeasurer returns the system-font measurer, or the fixed-advance
// fallback when no font can be loaded.
func BestMeasurer() scene.Measurer {
	if m, err := NewMeasurer(); err == nil {
		return m
	}
	return scene.FixedMeasurer{}
}
