// Package config provides configuration management for the sun exposure
// calculator. Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Profile  ProfileConfig  `toml:"profile"`
	Location LocationConfig `toml:"location"`
	Exposure ExposureConfig `toml:"exposure"`
	Display  DisplayConfig  `toml:"display"`
	Logging  LoggingConfig  `toml:"logging"`
	History  HistoryConfig  `toml:"history"`
}

// ProfileConfig contains the physiological constants for one individual.
// The synthesis engine takes these as an explicit parameter so alternate
// profiles can be tested without code changes.
type ProfileConfig struct {
	HeightInches   float64 `toml:"height_inches"`
	WeightLbs      float64 `toml:"weight_lbs"`
	SkinTypeFactor float64 `toml:"skin_type_factor"`
	AgeFactor      float64 `toml:"age_factor"`

	// BaseRateIU is the theoretical maximum synthesis rate in IU/hour.
	BaseRateIU float64 `toml:"base_rate_iu"`

	// MEDAtUV1Minutes is the minimal erythemal dose time at UV index 1.
	MEDAtUV1Minutes float64 `toml:"med_at_uv1_minutes"`

	// TargetDoseIU is the vitamin D dose the time-to-target output aims for.
	TargetDoseIU float64 `toml:"target_dose_iu"`

	// BurnSafetyMargin scales the technical burn time into the safety
	// warning threshold (0.8 = warn at 80% of one MED).
	BurnSafetyMargin float64 `toml:"burn_safety_margin"`
}

// LocationConfig pins the reference location. The timezone drives the
// hour/month reads; the latitude is informational (it fixes the winter
// window the supplement advisor uses).
type LocationConfig struct {
	Timezone string  `toml:"timezone"`
	Latitude float64 `toml:"latitude"`
}

// ExposureConfig holds the interactive input defaults and step sizes.
type ExposureConfig struct {
	DefaultUVIndex    float64 `toml:"default_uv_index"`
	UVIndexStep       float64 `toml:"uv_index_step"`
	DefaultAdaptation float64 `toml:"default_adaptation"`
	AdaptationStep    float64 `toml:"adaptation_step"`
	DefaultClothing   string  `toml:"default_clothing"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
	TimeFormat  string      `toml:"time_format"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeSolar ColorScheme = "solar"
	ColorSchemeGreen ColorScheme = "green"
	ColorSchemeWhite ColorScheme = "white"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// HistoryConfig controls the exposure session journal.
type HistoryConfig struct {
	Enabled       bool   `toml:"enabled"`
	Path          string `toml:"path"`
	RetentionDays int    `toml:"retention_days"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Profile.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("profile: %w", err))
	}

	if err := c.Location.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("location: %w", err))
	}

	if err := c.Exposure.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("exposure: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.History.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("history: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the profile configuration is valid.
func (p *ProfileConfig) Validate() error {
	var errs []error

	if p.HeightInches <= 0 {
		errs = append(errs, errors.New("height_inches must be positive"))
	}

	if p.WeightLbs <= 0 {
		errs = append(errs, errors.New("weight_lbs must be positive"))
	}

	if p.SkinTypeFactor <= 0 || p.SkinTypeFactor > 1.5 {
		errs = append(errs, errors.New("skin_type_factor must be in (0, 1.5]"))
	}

	if p.AgeFactor <= 0 || p.AgeFactor > 1.0 {
		errs = append(errs, errors.New("age_factor must be in (0, 1.0]"))
	}

	if p.BaseRateIU <= 0 {
		errs = append(errs, errors.New("base_rate_iu must be positive"))
	}

	if p.MEDAtUV1Minutes <= 0 {
		errs = append(errs, errors.New("med_at_uv1_minutes must be positive"))
	}

	if p.TargetDoseIU <= 0 {
		errs = append(errs, errors.New("target_dose_iu must be positive"))
	}

	if p.BurnSafetyMargin <= 0 || p.BurnSafetyMargin > 1.0 {
		errs = append(errs, errors.New("burn_safety_margin must be in (0, 1.0]"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the location configuration is valid.
func (l *LocationConfig) Validate() error {
	var errs []error

	if l.Timezone == "" {
		errs = append(errs, errors.New("timezone is required"))
	} else if _, err := time.LoadLocation(l.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", l.Timezone, err))
	}

	if l.Latitude < -90 || l.Latitude > 90 {
		errs = append(errs, errors.New("latitude must be between -90 and 90"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the exposure input defaults are valid.
func (e *ExposureConfig) Validate() error {
	var errs []error

	if e.DefaultUVIndex < 0 || e.DefaultUVIndex > 20 {
		errs = append(errs, errors.New("default_uv_index must be between 0 and 20"))
	}

	if e.UVIndexStep <= 0 {
		errs = append(errs, errors.New("uv_index_step must be positive"))
	}

	if e.DefaultAdaptation < 0.8 || e.DefaultAdaptation > 1.2 {
		errs = append(errs, errors.New("default_adaptation must be between 0.8 and 1.2"))
	}

	if e.AdaptationStep <= 0 {
		errs = append(errs, errors.New("adaptation_step must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	var errs []error

	validSchemes := map[ColorScheme]bool{
		ColorSchemeSolar: true,
		ColorSchemeGreen: true,
		ColorSchemeWhite: true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		errs = append(errs, fmt.Errorf("invalid color_scheme: %s", d.ColorScheme))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Validate checks that the history configuration is valid.
func (h *HistoryConfig) Validate() error {
	var errs []error

	if h.Enabled && h.Path == "" {
		errs = append(errs, errors.New("path is required when history is enabled"))
	}

	if h.RetentionDays < 0 {
		errs = append(errs, errors.New("retention_days must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Default returns a configuration with the reference profile: light skin
// (Type III), age 25, 6'2", 180 lbs, New York.
func Default() *Config {
	return &Config{
		Profile: ProfileConfig{
			HeightInches:     74,
			WeightLbs:        180,
			SkinTypeFactor:   1.0,
			AgeFactor:        0.95,
			BaseRateIU:       21000,
			MEDAtUV1Minutes:  425,
			TargetDoseIU:     15000,
			BurnSafetyMargin: 0.8,
		},
		Location: LocationConfig{
			Timezone: "America/New_York",
			Latitude: 40.7,
		},
		Exposure: ExposureConfig{
			DefaultUVIndex:    9.0,
			UVIndexStep:       0.1,
			DefaultAdaptation: 0.8,
			AdaptationStep:    0.05,
			DefaultClothing:   "NUDE",
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeSolar,
			DateFormat:  "2006-01-02",
			TimeFormat:  "03:04 PM",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/sunexposure.log",
		},
		History: HistoryConfig{
			Enabled:       true,
			Path:          "sessions.db",
			RetentionDays: 90,
		},
	}
}
