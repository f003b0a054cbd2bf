package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mindwheel/pkg/radial"
	"github.com/matzehuels/mindwheel/pkg/radial/view"
	"github.com/matzehuels/mindwheel/pkg/scene"
)

// configName is the per-project config file searched in the working
// directory before the user-level one.
const configName = "mindwheel.toml"

// Config holds the user-tunable defaults, loaded from TOML and overridden
// by command flags.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	View   ViewConfig   `toml:"view"`
	Labels LabelConfig  `toml:"labels"`
}

// LayoutConfig tunes the radial layout and link shaping.
type LayoutConfig struct {
	RadiusStep     float64 `toml:"radius_step"`
	BezierSamples  int     `toml:"bezier_samples"`
	CurvedLinks    bool    `toml:"curved_links"`
	EndpointRadius float64 `toml:"endpoint_radius"`
}

// ViewConfig tunes the camera.
type ViewConfig struct {
	BaseHalfHeight    float64 `toml:"base_half_height"`
	ZoomMin           float64 `toml:"zoom_min"`
	ZoomMax           float64 `toml:"zoom_max"`
	RotationDegPerSec float64 `toml:"rotation_deg_per_sec"`
}

// LabelConfig tunes label placement.
type LabelConfig struct {
	Scale           float64 `toml:"scale"`
	Pad             float64 `toml:"pad"`
	LeavesOnly      bool    `toml:"leaves_only"`
	ConstScreenSize bool    `toml:"const_screen_size"`
}

// defaultConfig mirrors the package-level defaults so a missing config
// file behaves identically to an empty one.
func defaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			RadiusStep:     radial.DefaultRadiusStep,
			BezierSamples:  scene.DefaultBezierSamples,
			CurvedLinks:    true,
			EndpointRadius: scene.DefaultEndpointRadius,
		},
		View: ViewConfig{
			BaseHalfHeight:    view.DefaultBaseHalfHeight,
			ZoomMin:           view.DefaultZoomMin,
			ZoomMax:           view.DefaultZoomMax,
			RotationDegPerSec: view.DefaultDegPerSec,
		},
		Labels: LabelConfig{
			Scale: scene.DefaultLabelScale,
			Pad:   scene.DefaultLabelPad,
		},
	}
}

// loadConfig reads the config file at path, or searches the default
// locations when path is empty: ./mindwheel.toml, then
// ~/.config/mindwheel/config.toml. A missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfig()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func findConfig() string {
	if _, err := os.Stat(configName); err == nil {
		return configName
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "mindwheel", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// cacheDir returns the artifact cache directory, creating nothing.
func cacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "mindwheel"), nil
}

// configKey is the context key for the loaded config.
const configKey ctxKey = 1

// withConfig returns a new context with the config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to the
// defaults when absent.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}
