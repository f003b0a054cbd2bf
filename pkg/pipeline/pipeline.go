// Package pipeline provides the core visualization pipeline for Mindwheel.
//
// This package implements the parse → layout → frame → render chain shared
// by the CLI commands and the HTTP server. Centralizing it keeps behavior
// identical across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: read a FreeMind document into the arena tree
//  2. Layout: compute radial coordinates for every node
//  3. Frame: combine the static layout with the camera state into
//     drawable primitives
//  4. Render: emit output formats (SVG, PNG, DOT and its
//     graphviz-rendered variants, JSON)
//
// Each stage can run independently or as part of [Runner.Execute].
// Rendered artifacts are cached keyed by document hash + options.
package pipeline

import (
	"github.com/matzehuels/mindwheel/pkg/cache"
	"github.com/matzehuels/mindwheel/pkg/radial"
	"github.com/matzehuels/mindwheel/pkg/radial/view"
	"github.com/matzehuels/mindwheel/pkg/scene"
)

// Format constants for output formats. The dot-svg and dot-png variants
// run the exported neato graph through graphviz instead of the native
// backends.
const (
	FormatSVG    = "svg"
	FormatPNG    = "png"
	FormatDOT    = "dot"
	FormatDOTSVG = "dot-svg"
	FormatDOTPNG = "dot-png"
	FormatJSON   = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:    true,
	FormatPNG:    true,
	FormatDOT:    true,
	FormatDOTSVG: true,
	FormatDOTPNG: true,
	FormatJSON:   true,
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the FreeMind document path.
	Input string `json:"input"`

	// Layout options
	RadiusStep float64 `json:"radius_step,omitempty"`

	// Frame options
	Curved          bool `json:"curved"`
	BezierSamples   int  `json:"bezier_samples,omitempty"`
	LeafOnly        bool `json:"leaf_only,omitempty"`
	ConstScreenSize bool `json:"const_screen_size,omitempty"`

	// Camera options
	Zoom        float64 `json:"zoom,omitempty"`
	RotationDeg float64 `json:"rotation_deg,omitempty"`
	PanX        float64 `json:"pan_x,omitempty"`
	PanY        float64 `json:"pan_y,omitempty"`

	// Render options
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.RadiusStep <= 0 {
		o.RadiusStep = radial.DefaultRadiusStep
	}
	if o.BezierSamples <= 0 {
		o.BezierSamples = scene.DefaultBezierSamples
	}
	if o.Zoom <= 0 {
		o.Zoom = 1.0
	}
	if o.Width <= 0 {
		o.Width = 1000
	}
	if o.Height <= 0 {
		o.Height = 900
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	return o
}

// View builds the camera for these options.
func (o Options) View() *view.View {
	v := view.New()
	v.Zoom = clamp(o.Zoom, v.ZoomMin, v.ZoomMax)
	v.PanX = o.PanX
	v.PanY = o.PanY
	v.Rotate(o.RotationDeg)
	return v
}

// FrameOptions builds the scene options for these options.
func (o Options) FrameOptions() scene.Options {
	so := scene.DefaultOptions()
	so.Curved = o.Curved
	so.BezierSamples = o.BezierSamples
	so.RadiusStep = o.RadiusStep
	so.LeafOnly = o.LeafOnly
	so.ConstScreenSize = o.ConstScreenSize
	return so
}

func (o Options) artifactOpts(format string) cache.ArtifactOpts {
	return cache.ArtifactOpts{
		Format:        format,
		Width:         o.Width,
		Height:        o.Height,
		RadiusStep:    o.RadiusStep,
		Curved:        o.Curved,
		BezierSamples: o.BezierSamples,
		LeafOnly:      o.LeafOnly,
		ConstScale:    o.ConstScreenSize,
		Zoom:          o.Zoom,
		RotationDeg:   o.RotationDeg,
		PanX:          o.PanX,
		PanY:          o.PanY,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
