package models

import (
	"errors"
	"fmt"
	"time"
)

// ExposureSession records one computed sun exposure pass that the user
// chose to journal. Sessions feed the adaptation factor suggestion; they
// are never read back into the synthesis formula itself.
type ExposureSession struct {
	ID         string        `json:"id"`
	RecordedAt time.Time     `json:"recorded_at"`
	UVIndex    float64       `json:"uv_index"`
	Clothing   ClothingLevel `json:"clothing"`
	Adaptation float64       `json:"adaptation"`

	// RateIUPerHour is the synthesis rate computed for the session inputs,
	// stored so the history view can show it without recomputing.
	RateIUPerHour float64 `json:"rate_iu_per_hour"`
}

// Validate checks that the session record is well-formed.
func (s *ExposureSession) Validate() error {
	var errs []error

	if s.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}

	if s.RecordedAt.IsZero() {
		errs = append(errs, errors.New("recorded_at is required"))
	}

	if s.UVIndex < 0 || s.UVIndex > 20 {
		errs = append(errs, fmt.Errorf("uv_index out of range: %g", s.UVIndex))
	}

	if !s.Clothing.Valid() {
		errs = append(errs, fmt.Errorf("invalid clothing level: %q", s.Clothing))
	}

	if s.Adaptation < 0.8 || s.Adaptation > 1.2 {
		errs = append(errs, fmt.Errorf("adaptation out of range: %g", s.Adaptation))
	}

	if s.RateIUPerHour < 0 {
		errs = append(errs, fmt.Errorf("rate must be non-negative: %g", s.RateIUPerHour))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
