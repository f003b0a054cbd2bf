package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Layout.RadiusStep != 35 {
		t.Errorf("RadiusStep = %v, want 35", cfg.Layout.RadiusStep)
	}
	if cfg.Layout.BezierSamples != 28 {
		t.Errorf("BezierSamples = %v, want 28", cfg.Layout.BezierSamples)
	}
	if !cfg.Layout.CurvedLinks {
		t.Error("CurvedLinks should default to true")
	}
	if cfg.View.BaseHalfHeight != 400 {
		t.Errorf("BaseHalfHeight = %v, want 400", cfg.View.BaseHalfHeight)
	}
	if cfg.View.RotationDegPerSec != 15 {
		t.Errorf("RotationDegPerSec = %v, want 15", cfg.View.RotationDegPerSec)
	}
	if cfg.Labels.Scale != 0.020 {
		t.Errorf("label scale = %v, want 0.020", cfg.Labels.Scale)
	}
	if cfg.Labels.LeavesOnly {
		t.Error("LeavesOnly should default to false")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindwheel.toml")
	doc := `
[layout]
radius_step = 50.0
curved_links = false

[labels]
leaves_only = true
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Layout.RadiusStep != 50 {
		t.Errorf("RadiusStep = %v, want 50", cfg.Layout.RadiusStep)
	}
	if cfg.Layout.CurvedLinks {
		t.Error("CurvedLinks should be overridden to false")
	}
	if !cfg.Labels.LeavesOnly {
		t.Error("LeavesOnly should be overridden to true")
	}

	// Unset fields keep their defaults.
	if cfg.Layout.BezierSamples != 28 {
		t.Errorf("BezierSamples = %v, want default 28", cfg.Layout.BezierSamples)
	}
	if cfg.View.BaseHalfHeight != 400 {
		t.Errorf("BaseHalfHeight = %v, want default 400", cfg.View.BaseHalfHeight)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadConfig should fail for an explicit missing path")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[layout\nbroken"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig should reject malformed TOML")
	}
}

func TestConfigContext(t *testing.T) {
	cfg := defaultConfig()
	cfg.Layout.RadiusStep = 99

	ctx := withConfig(context.Background(), cfg)
	if got := configFromContext(ctx); got.Layout.RadiusStep != 99 {
		t.Errorf("RadiusStep from context = %v, want 99", got.Layout.RadiusStep)
	}

	// A bare context yields the defaults.
	if got := configFromContext(context.Background()); got.Layout.RadiusStep != 35 {
		t.Errorf("RadiusStep from bare context = %v, want default 35", got.Layout.RadiusStep)
	}
}
