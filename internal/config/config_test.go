package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration failed validation: %v", err)
	}
}

func TestDefault_ReferenceProfile(t *testing.T) {
	cfg := Default()

	if cfg.Profile.HeightInches != 74 || cfg.Profile.WeightLbs != 180 {
		t.Errorf("profile dimensions = %g in / %g lbs, want 74 / 180",
			cfg.Profile.HeightInches, cfg.Profile.WeightLbs)
	}
	if cfg.Profile.BaseRateIU != 21000 {
		t.Errorf("BaseRateIU = %g, want 21000", cfg.Profile.BaseRateIU)
	}
	if cfg.Profile.MEDAtUV1Minutes != 425 {
		t.Errorf("MEDAtUV1Minutes = %g, want 425", cfg.Profile.MEDAtUV1Minutes)
	}
	if cfg.Profile.TargetDoseIU != 15000 {
		t.Errorf("TargetDoseIU = %g, want 15000", cfg.Profile.TargetDoseIU)
	}
	if cfg.Location.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", cfg.Location.Timezone)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutFn   func(c *Config)
		wantErr string
	}{
		{"zero height", func(c *Config) { c.Profile.HeightInches = 0 }, "height_inches"},
		{"negative weight", func(c *Config) { c.Profile.WeightLbs = -1 }, "weight_lbs"},
		{"zero base rate", func(c *Config) { c.Profile.BaseRateIU = 0 }, "base_rate_iu"},
		{"safety margin above 1", func(c *Config) { c.Profile.BurnSafetyMargin = 1.2 }, "burn_safety_margin"},
		{"empty timezone", func(c *Config) { c.Location.Timezone = "" }, "timezone"},
		{"bogus timezone", func(c *Config) { c.Location.Timezone = "Atlantis/Lost_City" }, "timezone"},
		{"latitude out of range", func(c *Config) { c.Location.Latitude = 120 }, "latitude"},
		{"uv default out of range", func(c *Config) { c.Exposure.DefaultUVIndex = 25 }, "default_uv_index"},
		{"adaptation default out of range", func(c *Config) { c.Exposure.DefaultAdaptation = 0.5 }, "default_adaptation"},
		{"bad color scheme", func(c *Config) { c.Display.ColorScheme = "neon" }, "color_scheme"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "log level"},
		{"history enabled without path", func(c *Config) { c.History.Path = "" }, "path"},
		{"negative retention", func(c *Config) { c.History.RetentionDays = -1 }, "retention_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutFn(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunexposure.toml")

	cfg := Default()
	cfg.Profile.WeightLbs = 200
	cfg.Display.ColorScheme = ColorSchemeGreen

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, loadedPath, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loadedPath != path {
		t.Errorf("loaded path = %q, want %q", loadedPath, path)
	}
	if loaded.Profile.WeightLbs != 200 {
		t.Errorf("WeightLbs = %g, want 200", loaded.Profile.WeightLbs)
	}
	if loaded.Display.ColorScheme != ColorSchemeGreen {
		t.Errorf("ColorScheme = %q, want green", loaded.Display.ColorScheme)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.toml")

	partial := `
[profile]
weight_lbs = 165
`
	if err := os.WriteFile(path, []byte(partial), 0640); err != nil {
		t.Fatalf("writing partial config: %v", err)
	}

	cfg, _, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Profile.WeightLbs != 165 {
		t.Errorf("WeightLbs = %g, want 165 from file", cfg.Profile.WeightLbs)
	}
	if cfg.Profile.BaseRateIU != 21000 {
		t.Errorf("BaseRateIU = %g, want default 21000", cfg.Profile.BaseRateIU)
	}
}

func TestLoad_InvalidFileReturnsLoadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")

	if err := os.WriteFile(path, []byte("profile = not toml"), 0640); err != nil {
		t.Fatalf("writing broken config: %v", err)
	}

	_, _, err := Load(path, false)
	if err == nil {
		t.Fatal("expected error for broken TOML")
	}

	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != path {
		t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
	}
	if loadErr.Unwrap() == nil {
		t.Error("LoadError should wrap the underlying error")
	}
}
