// Package synthesis implements the vitamin D synthesis formula pipeline:
// a pure computation from UV index, clothing coverage, adaptation history
// and time of day to a synthesis rate and its derived exposure thresholds.
package synthesis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/arnaudbellemare/sunexposure/internal/config"
	"github.com/arnaudbellemare/sunexposure/internal/models"
)

// Conditions are the per-pass inputs to the formula pipeline. Hour and
// Month come from the reference-timezone clock at the boundary; the
// engine itself never reads wall-clock time.
type Conditions struct {
	UVIndex    float64
	Clothing   models.ClothingLevel
	Adaptation float64
	Hour       int
	Month      time.Month
}

// Validate rejects conditions outside their declared ranges.
// All violations are reported together.
func (c Conditions) Validate() error {
	var errs []error

	if c.UVIndex < 0 || c.UVIndex > 20 {
		errs = append(errs, &InputError{Field: "uv_index", Value: c.UVIndex, Reason: "must be between 0 and 20"})
	}

	if !c.Clothing.Valid() {
		errs = append(errs, &InputError{Field: "clothing", Value: string(c.Clothing), Reason: "unknown clothing level"})
	}

	if c.Adaptation < 0.8 || c.Adaptation > 1.2 {
		errs = append(errs, &InputError{Field: "adaptation", Value: c.Adaptation, Reason: "must be between 0.8 and 1.2"})
	}

	if c.Hour < 0 || c.Hour > 23 {
		errs = append(errs, &InputError{Field: "hour", Value: c.Hour, Reason: "must be between 0 and 23"})
	}

	if c.Month < time.January || c.Month > time.December {
		errs = append(errs, &InputError{Field: "month", Value: int(c.Month), Reason: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Report is the complete output of one computation pass: the synthesis
// rate, its derived exposure thresholds, and every intermediate factor
// for the breakdown panel. It is created, read for display, and
// discarded; nothing mutates it.
type Report struct {
	// Echoed inputs
	UVIndex    float64
	Clothing   models.ClothingLevel
	Adaptation float64
	Hour       int
	Month      time.Month

	// Intermediate factors
	BaseRateIU     float64
	UVFactor       float64
	ClothingFactor float64
	SkinTypeFactor float64
	AgeFactor      float64
	QualityFactor  float64
	QualityNote    string

	// Primary output
	RateIUPerHour float64

	// Derived outputs. The minute values are +Inf when the condition is
	// unreachable (rate or UV index of zero); the presentation layer must
	// render that as an explicit sentinel, never a bare numeric string.
	TargetDoseIU         float64
	TimeToTargetMinutes  float64
	BurnTimeMinutes      float64
	SafetyWarningMinutes float64

	// Seasonal recommendation
	BMI        float64
	Supplement SupplementAdvice
}

// TargetAchievable reports whether the target dose is reachable under
// the current conditions.
func (r *Report) TargetAchievable() bool {
	return !math.IsInf(r.TimeToTargetMinutes, 1)
}

// BurnRisk reports whether any erythema risk exists (false at UV 0).
func (r *Report) BurnRisk() bool {
	return !math.IsInf(r.BurnTimeMinutes, 1)
}

// Engine evaluates the formula pipeline for one physiological profile.
// It is stateless: every Compute call is independent and idempotent
// given the same conditions.
type Engine struct {
	profile config.ProfileConfig
}

// NewEngine creates an engine for the given profile.
func NewEngine(profile config.ProfileConfig) *Engine {
	return &Engine{profile: profile}
}

// Profile returns the profile the engine was built with.
func (e *Engine) Profile() config.ProfileConfig {
	return e.profile
}

// Compute runs the full pipeline. Either the complete report is
// produced or an error; there are no partial results.
func (e *Engine) Compute(c Conditions) (*Report, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating conditions: %w", err)
	}

	quality := QualityFactor(c.Hour)
	var qualityNote string
	if quality == 1.0 {
		qualityNote = "Peak time (10 AM - 3 PM): Quality Factor = 1.0"
	} else {
		qualityNote = fmt.Sprintf("Off-peak time (hour %02d): Quality Factor = 0.5 (reduced for lower UV-B efficacy)", c.Hour)
	}

	uvFactor := UVFactor(c.UVIndex)
	clothingFactor := c.Clothing.Factor()

	rate := e.profile.BaseRateIU * uvFactor * clothingFactor *
		e.profile.SkinTypeFactor * e.profile.AgeFactor * quality * c.Adaptation

	// Time to reach the target dose. A zero rate (UV index 0 is the
	// reachable case) means the target is unachievable, not an error.
	timeToTarget := math.Inf(1)
	if rate > 0 {
		timeToTarget = e.profile.TargetDoseIU / rate * 60
	}

	// Erythemal dose time scales inversely with UV index. No UV, no burn.
	burnTime := math.Inf(1)
	safetyWarning := math.Inf(1)
	if c.UVIndex > 0 {
		burnTime = e.profile.MEDAtUV1Minutes / c.UVIndex
		safetyWarning = burnTime * e.profile.BurnSafetyMargin
	}

	bmi := BMI(e.profile.HeightInches, e.profile.WeightLbs)

	return &Report{
		UVIndex:    c.UVIndex,
		Clothing:   c.Clothing,
		Adaptation: c.Adaptation,
		Hour:       c.Hour,
		Month:      c.Month,

		BaseRateIU:     e.profile.BaseRateIU,
		UVFactor:       uvFactor,
		ClothingFactor: clothingFactor,
		SkinTypeFactor: e.profile.SkinTypeFactor,
		AgeFactor:      e.profile.AgeFactor,
		QualityFactor:  quality,
		QualityNote:    qualityNote,

		RateIUPerHour: rate,

		TargetDoseIU:         e.profile.TargetDoseIU,
		TimeToTargetMinutes:  timeToTarget,
		BurnTimeMinutes:      burnTime,
		SafetyWarningMinutes: safetyWarning,

		BMI:        bmi,
		Supplement: AdviseSupplement(c.Month, bmi),
	}, nil
}

// ComputeAt runs the pipeline using the hour and month of the given
// instant, which must already be in the reference timezone.
func (e *Engine) ComputeAt(t time.Time, uvIndex float64, clothing models.ClothingLevel, adaptation float64) (*Report, error) {
	return e.Compute(Conditions{
		UVIndex:    uvIndex,
		Clothing:   clothing,
		Adaptation: adaptation,
		Hour:       t.Hour(),
		Month:      t.Month(),
	})
}
